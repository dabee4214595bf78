package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/brocaar/bc125csv/internal/channel"
	"github.com/brocaar/bc125csv/internal/tone"
)

// Header is the column row leading every export.
var Header = []string{"Channel", "Name", "Frequency", "Modulation", "CTCSS/DCS", "Delay", "Lockout", "Priority"}

// Write renders channels as csv in ascending index order, each bank
// separated by a comment row. A nil channel marks an empty slot and is
// written as a row holding only its index, which a re-import skips.
// With sparse set, squelch, lockout and priority values equal to their
// defaults are left blank.
func Write(w io.Writer, channels map[int]*channel.Channel, sparse bool) error {
	indices := make([]int, 0, len(channels))
	for index := range channels {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "write csv error")
	}

	bank := 0
	for _, index := range indices {
		if b := (index-1)/channel.BankSize + 1; b != bank {
			bank = b
			cw.Flush()
			if err := cw.Error(); err != nil {
				return errors.Wrap(err, "write csv error")
			}
			if _, err := fmt.Fprintf(w, "\n# Bank %d\n", bank); err != nil {
				return errors.Wrap(err, "write csv error")
			}
		}

		c := channels[index]
		if c == nil {
			if err := cw.Write([]string{strconv.Itoa(index)}); err != nil {
				return errors.Wrap(err, "write csv error")
			}
			continue
		}

		row, err := channelRow(c, sparse)
		if err != nil {
			return errors.Wrapf(err, "channel %d", index)
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv error")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "write csv error")
}

func channelRow(c *channel.Channel, sparse bool) ([]string, error) {
	squelch, err := tone.Decode(c.ToneCode)
	if err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(c.Index),
		c.Name,
		c.Frequency,
		string(c.Modulation),
		squelch,
		strconv.Itoa(c.Delay),
		yesNo(c.Lockout),
		yesNo(c.Priority),
	}
	if sparse {
		if c.ToneCode == tone.CodeNone {
			row[4] = ""
		}
		if !c.Lockout {
			row[6] = ""
		}
		if !c.Priority {
			row[7] = ""
		}
	}
	return row, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
