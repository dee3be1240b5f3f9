// Package blindscan drives a frontend's blind scan: it starts the sweep,
// polls for completion and streams decoded transponder descriptors.
package blindscan

// Control channel protocol. All values are space-separated decimal
// integers; the sweep window is given in MHz.
const (
	// startCommandFormat carries start/stop frequency and min/max
	// symbol rate.
	startCommandFormat = "1 %d %d %d %d"

	// abortCommand stops a running sweep.
	abortCommand = "0 0 0 0 0"
)

// channelBufSize bounds a single status or record read. Driver replies
// are one short text line.
const channelBufSize = 512

// Default scan parameters
const (
	// DefaultStartMHz is the default sweep start frequency
	DefaultStartMHz = 950

	// DefaultStopMHz is the default sweep stop frequency
	DefaultStopMHz = 1950

	// DefaultSymbolRateMinMHz is the default minimum symbol rate in MS/s
	DefaultSymbolRateMinMHz = 2

	// DefaultSymbolRateMaxMHz is the default maximum symbol rate in MS/s
	DefaultSymbolRateMaxMHz = 45

	// DefaultPollIntervalMS is the delay between status polls
	DefaultPollIntervalMS = 100
)
