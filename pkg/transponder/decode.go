package transponder

// Label tables from device code to descriptor label. Codes outside a
// table fall back to the table's auto/default label: the driver's value
// space may grow past what we enumerate, and an unknown code is not an
// error.
var (
	inversionLabels = map[int]string{
		InversionOff: "INVERSION_OFF",
		InversionOn:  "INVERSION_ON",
	}

	pilotLabels = map[int]string{
		PilotOn:  "PILOT_ON",
		PilotOff: "PILOT_OFF",
	}

	fecLabels = map[int]string{
		FEC12:  "FEC_1_2",
		FEC23:  "FEC_2_3",
		FEC34:  "FEC_3_4",
		FEC45:  "FEC_4_5",
		FEC56:  "FEC_5_6",
		FEC67:  "FEC_6_7",
		FEC78:  "FEC_7_8",
		FEC89:  "FEC_8_9",
		FEC35:  "FEC_3_5",
		FEC910: "FEC_9_10",
		FEC25:  "FEC_2_5",
	}

	modulationLabels = map[int]string{
		ModPSK8:   "8PSK",
		ModAPSK16: "16APSK",
		ModAPSK32: "32APSK",
	}

	rolloffLabels = map[int]string{
		Rolloff20: "ROLLOFF_20",
		Rolloff25: "ROLLOFF_25",
	}
)

func label(table map[int]string, code int, fallback string) string {
	if s, ok := table[code]; ok {
		return s
	}
	return fallback
}

// roundTo1000 rounds to the nearest multiple of 1000 using the driver's
// integer arithmetic: add 500, truncate-divide, multiply. This must not
// be replaced with floating-point rounding; it would disagree at
// boundary values.
func roundTo1000(v uint32) uint32 {
	return ((v + 500) / 1000) * 1000
}

// Decode converts one raw record into a transponder descriptor. Pure:
// no I/O and no failure modes, malformed input is rejected upstream by
// ParseRecord.
func Decode(raw RawRecord, polarity Polarity, band Band) Descriptor {
	d := Descriptor{
		Polarity:      polarity,
		FrequencyKHz:  band.Transpose(roundTo1000(raw.FrequencyKHz)),
		SymbolRateKHz: roundTo1000(raw.SymbolRateKHz),
		Inversion:     label(inversionLabels, raw.Inversion, "INVERSION_AUTO"),
		Pilot:         label(pilotLabels, raw.Pilot, "PILOT_AUTO"),
		FEC:           label(fecLabels, raw.FECInner, "FEC_AUTO"),
		Modulation:    label(modulationLabels, raw.Modulation, "QPSK"),
		Rolloff:       label(rolloffLabels, raw.Rolloff, "ROLLOFF_35"),
		PLSMode:       raw.PLSMode,
		ISID:          raw.ISID,
		PLSCode:       raw.PLSCode,
	}

	if raw.DeliverySystem == SysDVBS {
		d.System = "DVB-S"
	} else {
		d.System = "DVB-S2"
	}

	if raw.T2MIPLPID != -1 {
		d.T2MI = &T2MIStream{PLPID: raw.T2MIPLPID, PID: raw.T2MIPID}
	}

	return d
}
