package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/brocaar/bc125csv/internal/channel"
)

// Stub emulates a scanner against an in-memory channel table, for use
// without hardware attached. It accepts every raw command, but only the
// programming related subset is emulated faithfully.
type Stub struct {
	model       string
	programming bool
	channels    map[int]*channel.Channel
}

var _ Scanner = (*Stub)(nil)

// NewStub returns a stub emulating the given model, defaulting to the
// BC125AT when empty.
func NewStub(model string) *Stub {
	if model == "" {
		model = ModelBC125AT
	}
	return &Stub{
		model:    model,
		channels: make(map[int]*channel.Channel),
	}
}

// Close implements the Scanner interface.
func (s *Stub) Close() error {
	return nil
}

// Model returns the emulated model name.
func (s *Stub) Model() (string, error) {
	return s.model, nil
}

// EnterProgramming puts the stub in programming mode.
func (s *Stub) EnterProgramming() error {
	s.programming = true
	return nil
}

// ExitProgramming returns the stub to normal operation.
func (s *Stub) ExitProgramming() error {
	s.programming = false
	return nil
}

// GetChannel reads the channel stored at the given index. It returns
// nil for a slot that holds no channel.
func (s *Stub) GetChannel(index int) (*channel.Channel, error) {
	if !s.programming {
		return nil, ErrNotProgramming
	}
	if index < 1 || index > channel.MaxChannels {
		return nil, errors.Errorf("invalid channel %d", index)
	}
	return s.channels[index], nil
}

// SetChannel stores the given channel.
func (s *Stub) SetChannel(c *channel.Channel) error {
	if !s.programming {
		return ErrNotProgramming
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cc := *c
	s.channels[c.Index] = &cc
	return nil
}

// DeleteChannel clears the slot at the given index.
func (s *Stub) DeleteChannel(index int) error {
	if !s.programming {
		return ErrNotProgramming
	}
	if index < 1 || index > channel.MaxChannels {
		return errors.Errorf("invalid channel %d", index)
	}
	delete(s.channels, index)
	return nil
}

// WriteRead emulates one raw protocol round trip against the in-memory
// table. Unknown commands are acknowledged with "<verb>,OK".
func (s *Stub) WriteRead(cmd string) (string, error) {
	verb := cmd
	if i := strings.Index(cmd, ","); i != -1 {
		verb = cmd[:i]
	}

	switch verb {
	case "MDL":
		return "MDL," + s.model, nil
	case "VER":
		return "VER,Version 1.06.00", nil
	case "PRG":
		s.programming = true
		return "PRG,OK", nil
	case "EPG":
		s.programming = false
		return "EPG,OK", nil
	case "CIN":
		return s.channelCommand(cmd), nil
	case "DCH":
		if !s.programming {
			return "DCH,NG", nil
		}
		index, err := strconv.Atoi(strings.TrimPrefix(cmd, "DCH,"))
		if err != nil || index < 1 || index > channel.MaxChannels {
			return "ERR", nil
		}
		delete(s.channels, index)
		return "DCH,OK", nil
	}
	return verb + ",OK", nil
}

// channelCommand emulates the two CIN forms: "CIN,<index>" reads a
// slot, the full field layout writes one.
func (s *Stub) channelCommand(cmd string) string {
	if !s.programming {
		return "CIN,NG"
	}

	if index, err := strconv.Atoi(strings.TrimPrefix(cmd, "CIN,")); err == nil {
		if index < 1 || index > channel.MaxChannels {
			return "ERR"
		}
		c := s.channels[index]
		if c == nil {
			return fmt.Sprintf("CIN,%d,,00000000,AUTO,0,2,1,0", index)
		}
		return encodeChannel(c)
	}

	c, err := decodeChannel(cmd)
	if err != nil || c == nil {
		return "ERR"
	}
	s.channels[c.Index] = c
	return "CIN,OK"
}
