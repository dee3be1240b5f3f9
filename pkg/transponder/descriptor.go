package transponder

import (
	"fmt"
	"strings"
)

// T2MIStream identifies a T2-MI sub-stream carried by a transponder.
type T2MIStream struct {
	PLPID int
	PID   int
}

// Descriptor is the decoded, caller-facing description of one
// discovered transponder. Immutable after Decode.
type Descriptor struct {
	Polarity      Polarity
	FrequencyKHz  uint32
	SymbolRateKHz uint32
	System        string
	Inversion     string
	Pilot         string
	FEC           string
	Modulation    string
	Rolloff       string
	PLSMode       int
	ISID          int
	PLSCode       int

	// T2MI is nil unless the record carried a T2-MI PLP id.
	T2MI *T2MIStream
}

// String renders the single-line output form. The T2-MI pair is
// appended only when present.
func (d Descriptor) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "OK %s %d %d %s %s %s %s %s %s %d %d %d",
		d.Polarity,
		d.FrequencyKHz,
		d.SymbolRateKHz,
		d.System,
		d.Inversion,
		d.Pilot,
		d.FEC,
		d.Modulation,
		d.Rolloff,
		d.PLSMode,
		d.ISID,
		d.PLSCode)

	if d.T2MI != nil {
		fmt.Fprintf(&b, " %d %d", d.T2MI.PLPID, d.T2MI.PID)
	}

	return b.String()
}
