package blindscan

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/edision-open/blindscan/pkg/transponder"
)

// Device abstracts the two blind scan channels of a frontend. The
// scanner depends on nothing else about the device.
type Device interface {
	ReadControl(maxLen int) ([]byte, error)
	WriteControl(data []byte) (int, error)
	ReadInfo(maxLen int) ([]byte, error)
	WriteInfo(data []byte) (int, error)
}

// Scanner drives one blind scan run over a Device. A Scanner is good
// for exactly one Run; the descriptor stream it produces is finite and
// not restartable.
type Scanner struct {
	device Device
	config *ScanConfig

	mu          sync.RWMutex
	state       State
	resultCount int
}

// New creates a Scanner with the given device and configuration.
func New(device Device, config *ScanConfig) (*Scanner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{device: device, config: config}, nil
}

// State returns the scanner's current lifecycle state.
func (s *Scanner) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ResultCount returns the record count the device reported when the
// sweep finished. Zero until the polling phase completes.
func (s *Scanner) ResultCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resultCount
}

func (s *Scanner) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.debug("scanner: -> %s", state)
}

// debug logs a debug message if the debug callback is set
func (s *Scanner) debug(format string, args ...interface{}) {
	if s.config.DebugLog != nil {
		s.config.DebugLog(format, args...)
	}
}

// Run executes the whole scan: start command, status polling, record
// enumeration. Decoded descriptors are sent on out as soon as each
// record is read; out is closed when the run ends.
//
// Cancelling ctx is the normal way to stop a scan. During polling it
// makes the scanner write the abort command to the device; during
// enumeration the remaining records are simply skipped. A cancelled run
// ends in StateAborted with a nil error. Channel failures end the run
// in StateFailed with an error naming the failing phase.
func (s *Scanner) Run(ctx context.Context, out chan<- transponder.Descriptor) error {
	defer close(out)

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrScannerRunning
	}
	s.state = StateRequested
	s.mu.Unlock()

	if err := s.start(); err != nil {
		s.setState(StateFailed)
		return fmt.Errorf("start scan: %w", err)
	}

	s.setState(StatePolling)
	count, err := s.poll(ctx)
	if err != nil {
		s.setState(StateFailed)
		return fmt.Errorf("poll scan status: %w", err)
	}
	if count < 0 {
		// Cancelled; abort command already issued.
		s.setState(StateAborted)
		return nil
	}

	s.mu.Lock()
	s.resultCount = count
	s.mu.Unlock()

	s.setState(StateEnumerating)
	if done := s.enumerate(ctx, count, out); !done {
		s.setState(StateAborted)
		return nil
	}

	s.setState(StateCompleted)
	return nil
}

// start writes the scan command for the configured sweep window.
func (s *Scanner) start() error {
	command := fmt.Sprintf(startCommandFormat,
		s.config.StartMHz, s.config.StopMHz,
		s.config.SymbolRateMinMHz, s.config.SymbolRateMaxMHz)

	s.debug("scanner: start command %q", command)
	_, err := s.device.WriteControl([]byte(command))
	return err
}

// poll reads the control channel until the device reports the sweep
// done, returning the record count. A return of -1 with nil error means
// the run was cancelled and the abort command was sent.
func (s *Scanner) poll(ctx context.Context) (int, error) {
	for {
		if ctx.Err() != nil {
			s.abort()
			return -1, nil
		}

		data, err := s.device.ReadControl(channelBufSize)
		if err != nil {
			return 0, err
		}

		status, err := parseStatus(data)
		if err != nil {
			return 0, err
		}
		s.debug("scanner: busy=%v results=%d progress=%d%%",
			status.Busy, status.ResultCount, status.Progress)

		if !status.Busy {
			return status.ResultCount, nil
		}

		select {
		case <-ctx.Done():
			// Abort is written at the top of the next iteration.
		case <-time.After(s.config.PollInterval()):
		}
	}
}

// abort tells the device to stop the sweep. Best effort: the write's
// outcome is deliberately ignored, there is nothing useful to do with
// a failure while already bailing out.
func (s *Scanner) abort() {
	s.debug("scanner: abort command %q", abortCommand)
	_, _ = s.device.WriteControl([]byte(abortCommand))
}

// enumerate requests records 0..count-1, decoding and forwarding each
// good one. Records that fail to read, parse short, or answer with the
// wrong index are skipped; a misbehaving device costs us records, not
// the run. Returns false if cancellation cut the enumeration short.
// Enumeration is read-only on the device, so no abort command is sent
// for this phase.
func (s *Scanner) enumerate(ctx context.Context, count int, out chan<- transponder.Descriptor) bool {
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return false
		}

		if _, err := s.device.WriteInfo([]byte(strconv.Itoa(i))); err != nil {
			s.debug("scanner: record %d: select failed: %v", i, err)
			continue
		}

		data, err := s.device.ReadInfo(channelBufSize)
		if err != nil {
			s.debug("scanner: record %d: read failed: %v", i, err)
			continue
		}

		raw, err := transponder.ParseRecord(data)
		if err != nil {
			s.debug("scanner: record %d: %v", i, err)
			continue
		}
		if raw.Index != i {
			s.debug("scanner: record %d: stale index %d", i, raw.Index)
			continue
		}

		descriptor := transponder.Decode(raw, s.config.Polarity, s.config.Band)
		select {
		case out <- descriptor:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
