//go:build !windows
// +build !windows

package scanner

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Access checks that the current user may open the given device for
// reading and writing, which on most distributions requires membership
// of the dialout group.
func Access(device string) error {
	if err := unix.Access(device, unix.R_OK|unix.W_OK); err != nil {
		return errors.Wrapf(err, "no read/write access to %s", device)
	}
	return nil
}
