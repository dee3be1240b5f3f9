package frontend

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Channel files are opened per operation and closed on every exit path.
// The driver rewinds its state machine on open, so holding a descriptor
// across operations would read stale data.

// readChannel reads up to maxLen bytes from a channel file, looping
// until the buffer is full or the driver stops producing. EINTR is
// retried transparently and never surfaced.
func readChannel(path string, maxLen int) ([]byte, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrChannelUnavailable, path, err)
	}
	defer unix.Close(fd)

	buf := make([]byte, maxLen)
	total := 0
	for total < maxLen {
		n, err := unix.Read(fd, buf[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			if total > 0 {
				break
			}
			return nil, fmt.Errorf("%w: read %s: %v", ErrChannelIO, path, err)
		}
		if n == 0 {
			break
		}
		total += n
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: read %s: no data", ErrChannelIO, path)
	}
	return buf[:total], nil
}

// writeChannel writes data to a channel file, looping until everything
// is transferred or the driver stops accepting. Returns the byte count
// actually written; a short but non-zero transfer is not an error.
func writeChannel(path string, data []byte) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %v", ErrChannelUnavailable, path, err)
	}
	defer unix.Close(fd)

	total := 0
	for total < len(data) {
		n, err := unix.Write(fd, data[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			if total > 0 {
				break
			}
			return 0, fmt.Errorf("%w: write %s: %v", ErrChannelIO, path, err)
		}
		if n == 0 {
			break
		}
		total += n
	}

	if total == 0 && len(data) > 0 {
		return 0, fmt.Errorf("%w: write %s: no progress", ErrChannelIO, path)
	}
	return total, nil
}
