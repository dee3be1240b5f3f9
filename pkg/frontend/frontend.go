// Package frontend exposes the blind scan control and result channels
// of a DVB frontend device, plus NIM slot resolution.
package frontend

import (
	"fmt"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
)

// DefaultBase is where the stb frontend procfs tree lives.
const DefaultBase = "/proc/stb/frontend"

// Frontend is one frontend device's pair of blind scan channels,
// identified by the frontend index.
type Frontend struct {
	Index int

	ctrlPath string
	infoPath string
}

// New binds to frontend index under DefaultBase.
func New(index int) *Frontend {
	return NewWithBase(DefaultBase, index)
}

// NewWithBase binds to frontend index under an alternate procfs base.
// Mostly useful for test rigs with regular files standing in for the
// driver channels.
func NewWithBase(base string, index int) *Frontend {
	dir := filepath.Join(base, strconv.Itoa(index))
	return &Frontend{
		Index:    index,
		ctrlPath: filepath.Join(dir, "bs_ctrl"),
		infoPath: filepath.Join(dir, "bs_info"),
	}
}

// Available reports whether both channel files are readable. A frontend
// without them has no blind scan support and is skipped.
func (f *Frontend) Available() bool {
	if unix.Access(f.ctrlPath, unix.R_OK) != nil {
		return false
	}
	return unix.Access(f.infoPath, unix.R_OK) == nil
}

// ReadControl reads up to maxLen bytes of scan status from the control
// channel.
func (f *Frontend) ReadControl(maxLen int) ([]byte, error) {
	return readChannel(f.ctrlPath, maxLen)
}

// WriteControl writes a scan command to the control channel.
func (f *Frontend) WriteControl(data []byte) (int, error) {
	return writeChannel(f.ctrlPath, data)
}

// ReadInfo reads up to maxLen bytes of the selected record from the
// result channel.
func (f *Frontend) ReadInfo(maxLen int) ([]byte, error) {
	return readChannel(f.infoPath, maxLen)
}

// WriteInfo writes a record index to the result channel, selecting the
// record the next ReadInfo returns.
func (f *Frontend) WriteInfo(data []byte) (int, error) {
	return writeChannel(f.infoPath, data)
}

// String implements fmt.Stringer.
func (f *Frontend) String() string {
	return fmt.Sprintf("frontend %d", f.Index)
}
