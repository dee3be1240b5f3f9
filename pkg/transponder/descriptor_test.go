package transponder

import (
	"strings"
	"testing"
)

func TestDescriptorString(t *testing.T) {
	raw := RawRecord{
		Index:          0,
		FrequencyKHz:   1190500,
		SymbolRateKHz:  27499,
		DeliverySystem: SysDVBS2,
		Inversion:      InversionAuto,
		Pilot:          PilotAuto,
		FECInner:       FEC34,
		Modulation:     ModPSK8,
		Rolloff:        Rolloff35,
		PLSMode:        0,
		ISID:           0,
		PLSCode:        0,
		T2MIPLPID:      -1,
	}

	d := Decode(raw, Vertical, BandC)
	want := "OK VERTICAL 3959000 27000 DVB-S2 INVERSION_AUTO PILOT_AUTO FEC_3_4 8PSK ROLLOFF_35 0 0 0"
	if got := d.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

// Without a T2-MI stream the line has 13 space-separated tokens; with
// one it has 15. The pair is appended, never zero-filled.
func TestDescriptorTokenCount(t *testing.T) {
	base := RawRecord{T2MIPLPID: -1}

	line := Decode(base, Horizontal, BandKuLow).String()
	if n := len(strings.Fields(line)); n != 13 {
		t.Errorf("token count without T2-MI = %d, want 13: %q", n, line)
	}

	base.T2MIPLPID = 0
	base.T2MIPID = 100
	line = Decode(base, Horizontal, BandKuLow).String()
	if n := len(strings.Fields(line)); n != 15 {
		t.Errorf("token count with T2-MI = %d, want 15: %q", n, line)
	}
	if !strings.HasSuffix(line, " 0 100") {
		t.Errorf("T2-MI pair not appended: %q", line)
	}
}
