package blindscan

import (
	"fmt"
	"strconv"
	"strings"
)

// ScanStatus is one status sample read from the control channel. It is
// re-read on every poll tick and never retained.
type ScanStatus struct {
	Busy        bool
	ResultCount int
	Progress    int // 0-100, informational only
}

// parseStatus decodes the "<busy> <result_count> <progress>" reply.
// Fewer than three fields is a malformed status, not a partial one.
func parseStatus(data []byte) (ScanStatus, error) {
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return ScanStatus{}, fmt.Errorf("%w: got %d of 3 fields",
			ErrMalformedStatus, len(fields))
	}

	values := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return ScanStatus{}, fmt.Errorf("%w: field %d: %q",
				ErrMalformedStatus, i, fields[i])
		}
		values[i] = v
	}

	return ScanStatus{
		Busy:        values[0] != 0,
		ResultCount: values[1],
		Progress:    values[2],
	}, nil
}
