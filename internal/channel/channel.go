// Package channel defines the scanner channel record and the codec between
// csv text fields and the scanner's native field encodings.
package channel

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/brocaar/bc125csv/internal/tone"
)

// Channel memory geometry of the supported scanner models.
const (
	BankSize    = 50 // channels per bank
	BankCount   = 10 // banks in channel memory
	MaxChannels = BankSize * BankCount
)

// MaxNameLen is the longest channel name the scanner stores.
const MaxNameLen = 16

// Modulation identifies the demodulation setting of a channel.
type Modulation string

// Valid modulations.
const (
	ModulationAuto Modulation = "AUTO"
	ModulationAM   Modulation = "AM"
	ModulationFM   Modulation = "FM"
	ModulationNFM  Modulation = "NFM"
)

// Channel is one programmable memory slot. An unprogrammed slot is
// represented by the absence of a Channel (nil), never by a Channel
// holding default field values.
type Channel struct {
	Index      int
	Name       string
	Frequency  string // normalized, exactly 4 fractional digits
	Modulation Modulation
	ToneCode   int
	Delay      int
	Lockout    bool
	Priority   bool
}

// Bank returns the 1-based bank holding the channel.
func (c Channel) Bank() int {
	return (c.Index-1)/BankSize + 1
}

// BankRange returns the first and last channel index of the given bank.
func BankRange(bank int) (first, last int) {
	return (bank-1)*BankSize + 1, bank * BankSize
}

// FrequencyCode returns the frequency in the scanner's 8-digit wire
// format, e.g. "04460062" for 446.0062 MHz.
func (c Channel) FrequencyCode() string {
	code := strings.Replace(c.Frequency, ".", "", 1)
	return strings.Repeat("0", 8-len(code)) + code
}

// FrequencyFromCode converts a wire-format frequency back to the csv
// representation. The all-zero code of an empty slot converts to
// "0.0000".
func FrequencyFromCode(code string) (string, error) {
	if len(code) < 5 || len(code) > 8 {
		return "", errors.Errorf("invalid frequency code %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return "", errors.Errorf("invalid frequency code %q", code)
		}
	}
	whole, err := strconv.Atoi(code[:len(code)-4])
	if err != nil {
		return "", errors.Errorf("invalid frequency code %q", code)
	}
	return strconv.Itoa(whole) + "." + code[len(code)-4:], nil
}

// Validate checks that all fields are within the ranges the scanner
// accepts, so that an encoded channel can not corrupt the device memory.
func (c Channel) Validate() error {
	if c.Index < 1 || c.Index > MaxChannels {
		return errors.Errorf("invalid channel %d", c.Index)
	}
	if _, err := ParseName(c.Name); err != nil {
		return err
	}
	if _, err := ParseFrequency(c.Frequency); err != nil {
		return err
	}
	if _, err := ParseModulation(string(c.Modulation)); err != nil {
		return err
	}
	if _, err := tone.Decode(c.ToneCode); err != nil {
		return err
	}
	if err := validDelay(c.Delay); err != nil {
		return err
	}
	return nil
}
