package blindscan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edision-open/blindscan/pkg/transponder"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blindscan.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
start_mhz: 1100
stop_mhz: 1400
polarity: vertical
band: c
`)

	config, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile err=%v", err)
	}

	if config.StartMHz != 1100 || config.StopMHz != 1400 {
		t.Errorf("window = %d-%d, want 1100-1400", config.StartMHz, config.StopMHz)
	}
	if config.Polarity != transponder.Vertical {
		t.Errorf("polarity = %q, want vertical", config.Polarity)
	}
	if config.Band != transponder.BandC {
		t.Errorf("band = %q, want c", config.Band)
	}

	// Absent keys keep their defaults.
	if config.SymbolRateMinMHz != DefaultSymbolRateMinMHz {
		t.Errorf("min symbol rate = %d, want default", config.SymbolRateMinMHz)
	}
	if config.PollIntervalMS != DefaultPollIntervalMS {
		t.Errorf("poll interval = %d, want default", config.PollIntervalMS)
	}
}

func TestLoadConfigFileInvalidBand(t *testing.T) {
	path := writeConfig(t, "band: l-band\n")

	_, err := LoadConfigFile(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	config.PollIntervalMS = 0
	if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero poll interval: err=%v, want ErrInvalidConfig", err)
	}

	config = DefaultConfig()
	config.Polarity = "circular"
	if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad polarity: err=%v, want ErrInvalidConfig", err)
	}
}

// The sweep window is deliberately not range-checked: an inverted or
// empty window is the device's to reject.
func TestValidateIgnoresWindow(t *testing.T) {
	config := DefaultConfig()
	config.StartMHz = 2000
	config.StopMHz = 100
	if err := config.Validate(); err != nil {
		t.Errorf("inverted window rejected: %v", err)
	}
}
