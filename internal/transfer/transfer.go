// Package transfer moves channel sets between the scanner and the
// in-memory representation, one bank at a time. Programming mode is
// held for the duration of a transfer and released on every exit path.
package transfer

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/brocaar/bc125csv/internal/channel"
	"github.com/brocaar/bc125csv/internal/scanner"
)

// AllBanks returns the full bank range of the scanner.
func AllBanks() []int {
	banks := make([]int, channel.BankCount)
	for i := range banks {
		banks[i] = i + 1
	}
	return banks
}

// Import writes the given channels to the scanner. Within the selected
// banks every slot is touched: indices present in the set are
// programmed, all others are cleared. Channels outside the selected
// banks are left alone.
func Import(s scanner.Scanner, channels map[int]*channel.Channel, banks []int) (err error) {
	if err := validBanks(banks); err != nil {
		return err
	}

	model, err := s.Model()
	if err != nil {
		return errors.Wrap(err, "get model error")
	}
	if !scanner.SupportsNFM(model) {
		for _, c := range channels {
			if c != nil && c.Modulation == channel.ModulationNFM {
				return errors.Errorf("channel %d: model %s does not support NFM modulation", c.Index, model)
			}
		}
	}

	if err := s.EnterProgramming(); err != nil {
		return errors.Wrap(err, "enter programming mode error")
	}
	defer func() {
		if eerr := s.ExitProgramming(); eerr != nil {
			if err == nil {
				err = errors.Wrap(eerr, "exit programming mode error")
			} else {
				log.WithError(eerr).Error("transfer: exit programming mode error")
			}
		}
	}()

	for _, bank := range banks {
		log.WithFields(log.Fields{
			"bank": bank,
		}).Info("transfer: writing bank")

		first, last := channel.BankRange(bank)
		for index := first; index <= last; index++ {
			if c := channels[index]; c != nil {
				log.WithField("channel", index).Debug("transfer: writing channel")
				if err := s.SetChannel(c); err != nil {
					return errors.Wrapf(err, "set channel %d error", index)
				}
			} else {
				log.WithField("channel", index).Debug("transfer: deleting channel")
				if err := s.DeleteChannel(index); err != nil {
					return errors.Wrapf(err, "delete channel %d error", index)
				}
			}
		}
	}

	return nil
}

// Export reads the selected banks from the scanner. Empty slots are
// omitted from the result, unless includeEmpty is set, in which case
// they appear as nil entries.
func Export(s scanner.Scanner, banks []int, includeEmpty bool) (channels map[int]*channel.Channel, err error) {
	if err := validBanks(banks); err != nil {
		return nil, err
	}

	if err := s.EnterProgramming(); err != nil {
		return nil, errors.Wrap(err, "enter programming mode error")
	}
	defer func() {
		if eerr := s.ExitProgramming(); eerr != nil {
			if err == nil {
				err = errors.Wrap(eerr, "exit programming mode error")
			} else {
				log.WithError(eerr).Error("transfer: exit programming mode error")
			}
		}
	}()

	channels = make(map[int]*channel.Channel)
	for _, bank := range banks {
		log.WithFields(log.Fields{
			"bank": bank,
		}).Info("transfer: reading bank")

		first, last := channel.BankRange(bank)
		for index := first; index <= last; index++ {
			log.WithField("channel", index).Debug("transfer: reading channel")
			c, err := s.GetChannel(index)
			if err != nil {
				return nil, errors.Wrapf(err, "get channel %d error", index)
			}
			if c != nil {
				channels[index] = c
			} else if includeEmpty {
				channels[index] = nil
			}
		}
	}

	return channels, nil
}

func validBanks(banks []int) error {
	if len(banks) == 0 {
		return errors.New("no banks selected")
	}
	for _, bank := range banks {
		if bank < 1 || bank > channel.BankCount {
			return errors.Errorf("invalid bank %d", bank)
		}
	}
	return nil
}
