package frontend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const socketsListing = "NIM Socket 0:\n" +
	"\tType: DVB-S2\n" +
	"\tName: Si2166D\n" +
	"\tFrontend_Device: 0\n" +
	"\tI2C_Device: 2\n" +
	"NIM Socket 1:\n" +
	"\tType: DVB-S2\n" +
	"\tName: Si2166D\n" +
	"\tFrontend_Device: 2\n" +
	"\tI2C_Device: 3\n"

func writeListing(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nim_sockets")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write listing: %v", err)
	}
	return path
}

func TestResolveSlotFile(t *testing.T) {
	path := writeListing(t, socketsListing)

	tests := []struct {
		slot int
		want int
	}{
		{0, 0},
		{1, 2}, // slot and frontend index need not match
	}
	for _, tt := range tests {
		got, err := ResolveSlotFile(path, tt.slot)
		if err != nil {
			t.Errorf("slot %d: err=%v", tt.slot, err)
			continue
		}
		if got != tt.want {
			t.Errorf("slot %d: frontend = %d, want %d", tt.slot, got, tt.want)
		}
	}
}

func TestResolveSlotFileNotFound(t *testing.T) {
	path := writeListing(t, socketsListing)

	_, err := ResolveSlotFile(path, 3)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestResolveSlotFileNoFrontend(t *testing.T) {
	// A socket without a Frontend_Device line resolves nothing.
	path := writeListing(t, "NIM Socket 0:\n\tType: DVB-S2\n")

	_, err := ResolveSlotFile(path, 0)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestResolveSlotFileMissing(t *testing.T) {
	_, err := ResolveSlotFile(filepath.Join(t.TempDir(), "nope"), 0)
	if err == nil {
		t.Error("expected error for missing listing")
	}
}
