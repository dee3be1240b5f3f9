package blindscan

import "errors"

// Scanner errors
var (
	// ErrScannerRunning indicates Run was called on a scanner that has
	// already left the idle state. A scanner drives one sweep and is
	// not reusable.
	ErrScannerRunning = errors.New("scanner has already run")

	// ErrMalformedStatus indicates the control channel returned
	// something other than the three status integers.
	ErrMalformedStatus = errors.New("malformed scan status")

	// ErrInvalidConfig indicates invalid scanner configuration
	ErrInvalidConfig = errors.New("invalid scanner configuration")
)
