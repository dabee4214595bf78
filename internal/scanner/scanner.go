// Package scanner drives the channel memory of BC125AT family scanners
// over their usb serial interface. Commands and replies are single CR
// terminated ascii lines, one round trip at a time. Channel reads and
// writes are only valid while the device is held in programming mode.
package scanner

import (
	"github.com/pkg/errors"

	"github.com/brocaar/bc125csv/internal/channel"
)

// Models with the documented command set.
const (
	ModelBC125AT   = "BC125AT"
	ModelUBC125XLT = "UBC125XLT"
	ModelUBC126AT  = "UBC126AT"
)

// Errors returned by the protocol driver.
var (
	// ErrNotFound is returned by Lookup when no scanner is connected.
	ErrNotFound = errors.New("no scanner found")

	// ErrNotProgramming is returned by channel operations when
	// programming mode has not been entered.
	ErrNotProgramming = errors.New("not in programming mode")

	// ErrTimeout is returned when the scanner does not reply within the
	// configured read timeout.
	ErrTimeout = errors.New("read timeout")
)

// Scanner is the protocol driver contract shared by the serial device
// and the in-memory stub.
type Scanner interface {
	// Model returns the model name reported by the device.
	Model() (string, error)

	// EnterProgramming puts the device in programming mode.
	EnterProgramming() error

	// ExitProgramming returns the device to normal operation. It must
	// be called once for every successful EnterProgramming, also on
	// error paths, or the device stays locked in programming mode.
	ExitProgramming() error

	// GetChannel reads the channel stored at the given index. It
	// returns nil for a slot that holds no channel.
	GetChannel(index int) (*channel.Channel, error)

	// SetChannel programs the given channel.
	SetChannel(c *channel.Channel) error

	// DeleteChannel clears the slot at the given index.
	DeleteChannel(index int) error

	// WriteRead performs one raw protocol round trip.
	WriteRead(cmd string) (string, error)

	// Close releases the underlying transport.
	Close() error
}

// IsSupported reports whether the driver knows the given model.
func IsSupported(model string) bool {
	switch model {
	case ModelBC125AT, ModelUBC125XLT, ModelUBC126AT:
		return true
	}
	return false
}

// SupportsNFM reports whether the given model accepts narrow FM
// modulation. The european UBC125XLT does not.
func SupportsNFM(model string) bool {
	return model != ModelUBC125XLT
}
