package frontend

import "errors"

// Frontend errors
var (
	// ErrChannelUnavailable indicates a blind scan channel file cannot be
	// opened. The frontend simply has no blind scan support; callers
	// skip the device rather than fail.
	ErrChannelUnavailable = errors.New("blind scan channel unavailable")

	// ErrChannelIO indicates a read or write moved no bytes after the
	// retry-on-interruption policy was exhausted.
	ErrChannelIO = errors.New("blind scan channel i/o failed")

	// ErrSlotNotFound indicates no NIM socket matches the requested slot.
	ErrSlotNotFound = errors.New("no frontend for NIM slot")
)
