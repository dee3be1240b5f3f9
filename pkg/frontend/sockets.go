package frontend

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultSocketsPath is the kernel's NIM socket listing.
const DefaultSocketsPath = "/proc/bus/nim_sockets"

// ResolveSlot maps a NIM slot number to its frontend device index using
// the default socket listing.
func ResolveSlot(slot int) (int, error) {
	return ResolveSlotFile(DefaultSocketsPath, slot)
}

// ResolveSlotFile parses a nim_sockets listing and returns the frontend
// index registered for the given slot. The listing interleaves
// "NIM Socket N:" headers with indented attribute lines, of which only
// Frontend_Device matters here.
func ResolveSlotFile(path string, slot int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return -1, fmt.Errorf("open socket listing: %w", err)
	}
	defer file.Close()

	devices := make(map[int]int)
	current := -1

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "NIM Socket"):
			var n int
			if _, err := fmt.Sscanf(line, "NIM Socket %d", &n); err == nil {
				current = n
			}
		case strings.HasPrefix(line, "\tFrontend_Device"):
			var fe int
			if _, err := fmt.Sscanf(line, "\tFrontend_Device: %d", &fe); err == nil && current >= 0 {
				devices[current] = fe
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return -1, fmt.Errorf("read socket listing: %w", err)
	}

	fe, ok := devices[slot]
	if !ok {
		return -1, fmt.Errorf("%w: slot %d", ErrSlotNotFound, slot)
	}
	return fe, nil
}
