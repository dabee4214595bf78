package channel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Defaults applied to absent optional csv columns.
const (
	DefaultDelay      = 2
	DefaultModulation = ModulationAuto
)

// Receive spectrum envelope of the BC125AT family, in MHz.
const (
	MinFrequency = 25.0
	MaxFrequency = 512.0
)

// nameAlphabet is the character whitelist the scanner accepts in channel
// names.
const nameAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%&*()-/<>.? "

var reFrequency = regexp.MustCompile(`^(\d{1,7})(?:\.(\d+))?\s*(mhz|khz)?$`)

// ParseIndex parses a channel index.
func ParseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil || index < 1 || index > MaxChannels {
		return 0, errors.Errorf("invalid channel %q", s)
	}
	return index, nil
}

// ParseName validates a channel name against the scanner's character
// whitelist and name length.
func ParseName(s string) (string, error) {
	if len(s) > MaxNameLen {
		return "", errors.Errorf("invalid name %q: longer than %d characters", s, MaxNameLen)
	}
	for _, r := range s {
		if !strings.ContainsRune(nameAlphabet, r) {
			return "", errors.Errorf("invalid name %q", s)
		}
	}
	return s, nil
}

// ParseFrequency normalizes a user-entered frequency to the nn.mmmm csv
// format: integer part without leading zeros, fractional part padded or
// truncated to exactly 4 digits. Values with more than four significant
// integer digits, or with an explicit kHz suffix, are interpreted as kHz
// and rescaled. The result must fall within the receive spectrum.
func ParseFrequency(s string) (string, error) {
	m := reFrequency.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return "", errors.Errorf("invalid frequency %q", s)
	}
	whole, frac, unit := m[1], m[2], m[3]

	if unit == "khz" || len(strings.TrimLeft(whole, "0")) > 4 {
		// Shift the decimal point three places left.
		for len(whole) < 3 {
			whole = "0" + whole
		}
		cut := len(whole) - 3
		whole, frac = whole[:cut], whole[cut:]+frac
	}

	if len(frac) > 4 {
		frac = frac[:4]
	} else {
		frac += strings.Repeat("0", 4-len(frac))
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}

	mhz, err := strconv.ParseFloat(whole+"."+frac, 64)
	if err != nil || mhz < MinFrequency || mhz > MaxFrequency {
		return "", errors.Errorf("frequency %q outside the receive spectrum", s)
	}

	return whole + "." + frac, nil
}

// ParseModulation parses a modulation name, defaulting to AUTO when
// absent.
func ParseModulation(s string) (Modulation, error) {
	if s == "" {
		return DefaultModulation, nil
	}
	switch m := Modulation(strings.ToUpper(s)); m {
	case ModulationAuto, ModulationAM, ModulationFM, ModulationNFM:
		return m, nil
	}
	return "", errors.Errorf("invalid modulation %q", s)
}

// ParseDelay parses a signal delay value, defaulting to 2 seconds when
// absent.
func ParseDelay(s string) (int, error) {
	if s == "" {
		return DefaultDelay, nil
	}
	delay, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid delay %q", s)
	}
	if err := validDelay(delay); err != nil {
		return 0, err
	}
	return delay, nil
}

// ParseBool parses the interchangeable yes/no vocabulary used by the
// lockout and priority columns, defaulting to false when absent.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "yes", "true":
		return true, nil
	case "", "0", "no", "false":
		return false, nil
	}
	return false, errors.Errorf("invalid value %q", s)
}

func validDelay(delay int) error {
	switch delay {
	case -10, -5, 0, 1, 2, 3, 4, 5:
		return nil
	}
	return errors.Errorf("invalid delay %d", delay)
}
