package blindscan

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edision-open/blindscan/pkg/transponder"
)

// ScanConfig defines the sweep window and run parameters for one scan.
// The frequency and symbol rate window is passed to the device as-is;
// an unusable window is the device's to reject, not ours.
type ScanConfig struct {
	StartMHz         uint32 `yaml:"start_mhz"`
	StopMHz          uint32 `yaml:"stop_mhz"`
	SymbolRateMinMHz uint32 `yaml:"symbolrate_min_mhz"`
	SymbolRateMaxMHz uint32 `yaml:"symbolrate_max_mhz"`

	Polarity transponder.Polarity `yaml:"polarity"`
	Band     transponder.Band     `yaml:"band"`

	PollIntervalMS int `yaml:"poll_interval_ms"`

	// Debug callback (optional, not serialized)
	DebugLog func(format string, args ...interface{}) `yaml:"-"`
}

// DefaultConfig returns a ScanConfig with default values.
func DefaultConfig() *ScanConfig {
	return &ScanConfig{
		StartMHz:         DefaultStartMHz,
		StopMHz:          DefaultStopMHz,
		SymbolRateMinMHz: DefaultSymbolRateMinMHz,
		SymbolRateMaxMHz: DefaultSymbolRateMaxMHz,
		Polarity:         transponder.Horizontal,
		Band:             transponder.BandKuLow,
		PollIntervalMS:   DefaultPollIntervalMS,
	}
}

// Validate checks the configuration for errors.
func (c *ScanConfig) Validate() error {
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("%w: poll interval must be > 0", ErrInvalidConfig)
	}
	switch c.Polarity {
	case transponder.Horizontal, transponder.Vertical:
	default:
		return fmt.Errorf("%w: unknown polarity %q", ErrInvalidConfig, c.Polarity)
	}
	switch c.Band {
	case transponder.BandKuLow, transponder.BandKuHigh, transponder.BandC:
	default:
		return fmt.Errorf("%w: unknown band %q", ErrInvalidConfig, c.Band)
	}
	return nil
}

// PollInterval returns the poll cadence as a duration.
func (c *ScanConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// LoadConfigFile reads a YAML configuration file over the defaults.
// Keys absent from the file keep their default values.
func LoadConfigFile(path string) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
