package transponder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRecord indicates a result record with the wrong field count
// or a non-numeric field. Malformed records are skipped by the caller,
// never treated as fatal.
var ErrMalformedRecord = errors.New("malformed transponder record")

// RawRecord is one undecoded result record as reported by the device.
type RawRecord struct {
	Index          int
	FrequencyKHz   uint32
	SymbolRateKHz  uint32
	DeliverySystem int
	Inversion      int
	Pilot          int
	FECInner       int
	Modulation     int
	Rolloff        int
	PLSMode        int
	ISID           int
	PLSCode        int
	T2MIPLPID      int
	T2MIPID        int
}

// ParseRecord decodes the space-separated integer form read from the
// result channel. At least RecordFieldCount fields must be present;
// trailing fields beyond the fourteenth are ignored.
func ParseRecord(data []byte) (RawRecord, error) {
	fields := strings.Fields(string(data))
	if len(fields) < RecordFieldCount {
		return RawRecord{}, fmt.Errorf("%w: got %d of %d fields",
			ErrMalformedRecord, len(fields), RecordFieldCount)
	}

	values := make([]int64, RecordFieldCount)
	for i := 0; i < RecordFieldCount; i++ {
		v, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return RawRecord{}, fmt.Errorf("%w: field %d: %q",
				ErrMalformedRecord, i, fields[i])
		}
		values[i] = v
	}

	return RawRecord{
		Index:          int(values[0]),
		FrequencyKHz:   uint32(values[1]),
		SymbolRateKHz:  uint32(values[2]),
		DeliverySystem: int(values[3]),
		Inversion:      int(values[4]),
		Pilot:          int(values[5]),
		FECInner:       int(values[6]),
		Modulation:     int(values[7]),
		Rolloff:        int(values[8]),
		PLSMode:        int(values[9]),
		ISID:           int(values[10]),
		PLSCode:        int(values[11]),
		T2MIPLPID:      int(values[12]),
		T2MIPID:        int(values[13]),
	}, nil
}
