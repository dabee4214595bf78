// Package csvio converts between csv text and channel records. The
// importer validates every row before any result is handed back, the
// exporter renders channels in a form the importer accepts unchanged.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/brocaar/bc125csv/internal/channel"
	"github.com/brocaar/bc125csv/internal/tone"
)

// LineError is a row-level validation error annotated with the source
// line it was found on.
type LineError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// ValidationErrors collects every row-level error of one import pass.
type ValidationErrors []LineError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%d invalid rows", len(e))
}

// Read parses csv data into channels keyed by index. The whole input is
// validated in a single pass: when one or more rows fail, Read returns
// a ValidationErrors holding every offending source line, and no
// channel map.
//
// The first record is the header and is always skipped. Blank rows,
// comment rows and rows with fewer than three fields are skipped as
// well, so an exported file (bank comments and empty-slot placeholders
// included) reads back without errors.
func Read(r io.Reader) (map[int]*channel.Channel, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.Comment = '#'

	channels := make(map[int]*channel.Channel)
	var verrs ValidationErrors

	for first := true; ; first = false {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				verrs = append(verrs, LineError{Line: perr.Line, Err: perr.Err})
				continue
			}
			return nil, errors.Wrap(err, "read csv error")
		}
		if first || len(record) < 3 {
			continue
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if record[0] == "" || strings.HasPrefix(record[0], "#") {
			continue
		}

		line, _ := cr.FieldPos(0)
		c, err := parseRow(record)
		if err != nil {
			verrs = append(verrs, LineError{Line: line, Err: err})
			continue
		}
		if _, ok := channels[c.Index]; ok {
			verrs = append(verrs, LineError{Line: line, Err: errors.Errorf("channel %d was seen before", c.Index)})
			continue
		}
		channels[c.Index] = c
	}

	if len(verrs) != 0 {
		return nil, verrs
	}
	return channels, nil
}

// parseRow decodes one data row in column order index, name, frequency,
// modulation, squelch, delay, lockout, priority. Absent trailing
// columns take their field defaults, columns beyond the eighth are
// ignored.
func parseRow(record []string) (*channel.Channel, error) {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	index, err := channel.ParseIndex(field(0))
	if err != nil {
		return nil, err
	}
	name, err := channel.ParseName(field(1))
	if err != nil {
		return nil, err
	}
	frequency, err := channel.ParseFrequency(field(2))
	if err != nil {
		return nil, err
	}
	modulation, err := channel.ParseModulation(field(3))
	if err != nil {
		return nil, err
	}
	code, ok := tone.Encode(field(4))
	if !ok {
		return nil, errors.Errorf("invalid ctcss/dcs squelch %q", field(4))
	}
	delay, err := channel.ParseDelay(field(5))
	if err != nil {
		return nil, err
	}
	lockout, err := channel.ParseBool(field(6))
	if err != nil {
		return nil, errors.Wrap(err, "lockout")
	}
	priority, err := channel.ParseBool(field(7))
	if err != nil {
		return nil, errors.Wrap(err, "priority")
	}

	return &channel.Channel{
		Index:      index,
		Name:       name,
		Frequency:  frequency,
		Modulation: modulation,
		ToneCode:   code,
		Delay:      delay,
		Lockout:    lockout,
		Priority:   priority,
	}, nil
}
