package transponder

import "fmt"

// Polarity is the signal polarity the scan was run with. It is a run
// configuration choice, not part of the raw record.
type Polarity string

const (
	Horizontal Polarity = "horizontal"
	Vertical   Polarity = "vertical"
)

// String returns the descriptor-line form of the polarity.
func (p Polarity) String() string {
	if p == Vertical {
		return "VERTICAL"
	}
	return "HORIZONTAL"
}

// Band selects the LNB frequency transposition applied while decoding.
type Band string

const (
	BandKuLow  Band = "ku-low"
	BandKuHigh Band = "ku-high"
	BandC      Band = "c"
)

// ParseBand maps a configuration string to a Band.
func ParseBand(s string) (Band, error) {
	switch Band(s) {
	case BandKuLow, BandKuHigh, BandC:
		return Band(s), nil
	case "":
		return BandKuLow, nil
	default:
		return BandKuLow, fmt.Errorf("unknown band %q", s)
	}
}

// Transpose converts an intermediate frequency to the absolute downlink
// frequency, both in kHz. C-band LNBs invert the spectrum, so the IF is
// subtracted from the local oscillator frequency there.
func (b Band) Transpose(ifKHz uint32) uint32 {
	switch b {
	case BandC:
		return CBandLOFKHz - ifKHz
	case BandKuHigh:
		return ifKHz + KuHighLOFKHz
	default:
		return ifKHz + KuLowLOFKHz
	}
}
