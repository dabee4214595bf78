package scanner

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"github.com/brocaar/bc125csv/internal/channel"
	"github.com/brocaar/bc125csv/internal/tone"
)

// reCIN matches the body of a channel read reply and of a channel write
// command, which share the same field layout.
var reCIN = regexp.MustCompile(`^CIN,(\d{1,3}),([^,]*),(\d{1,8}),(AUTO|AM|FM|NFM),(\d{1,3}),(-10|-5|0|1|2|3|4|5),(0|1),(0|1)$`)

// Device drives a scanner connected to a serial port.
type Device struct {
	port        io.ReadWriteCloser
	pending     []byte
	programming bool
}

var _ Scanner = (*Device)(nil)

// Open connects to the scanner on the given serial port.
func Open(name string, baudRate int, readTimeout time.Duration) (*Device, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, errors.Wrap(err, "open serial port error")
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "set read timeout error")
	}

	log.WithFields(log.Fields{
		"port":      name,
		"baud_rate": baudRate,
	}).Debug("scanner: serial port opened")

	return &Device{port: port}, nil
}

// Close releases the serial port.
func (d *Device) Close() error {
	return errors.Wrap(d.port.Close(), "close serial port error")
}

// WriteRead performs one protocol round trip: one CR terminated command
// line out, one reply line back.
func (d *Device) WriteRead(cmd string) (string, error) {
	if _, err := d.port.Write([]byte(cmd + "\r")); err != nil {
		return "", errors.Wrap(err, "write command error")
	}
	resp, err := d.readLine()
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"command":  cmd,
		"response": resp,
	}).Debug("scanner: round trip")

	return resp, nil
}

// readLine reads one CR terminated reply. Bytes received beyond the
// terminator are kept for the next call. The serial port returns a zero
// length read when the timeout elapses.
func (d *Device) readLine() (string, error) {
	var line []byte
	buf := make([]byte, 64)
	for {
		for len(d.pending) > 0 {
			b := d.pending[0]
			d.pending = d.pending[1:]
			switch b {
			case '\n':
				if len(line) == 0 {
					continue
				}
				return string(line), nil
			case '\r':
				return string(line), nil
			default:
				line = append(line, b)
			}
		}

		n, err := d.port.Read(buf)
		if err != nil {
			return "", errors.Wrap(err, "read response error")
		}
		if n == 0 {
			return "", ErrTimeout
		}
		d.pending = append(d.pending, buf[:n]...)
	}
}

// send issues a command whose only valid reply is "<verb>,OK".
func (d *Device) send(cmd string) error {
	resp, err := d.WriteRead(cmd)
	if err != nil {
		return err
	}
	verb := cmd
	if i := strings.Index(cmd, ","); i != -1 {
		verb = cmd[:i]
	}
	if resp != verb+",OK" {
		return errors.Errorf("unexpected response %q to %s command", resp, verb)
	}
	return nil
}

// Model returns the model name reported by the device.
func (d *Device) Model() (string, error) {
	resp, err := d.WriteRead("MDL")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resp, "MDL,") {
		return "", errors.Errorf("unexpected response %q to MDL command", resp)
	}
	return strings.TrimPrefix(resp, "MDL,"), nil
}

// EnterProgramming puts the device in programming mode.
func (d *Device) EnterProgramming() error {
	if err := d.send("PRG"); err != nil {
		return err
	}
	d.programming = true
	return nil
}

// ExitProgramming returns the device to normal operation.
func (d *Device) ExitProgramming() error {
	if err := d.send("EPG"); err != nil {
		return err
	}
	d.programming = false
	return nil
}

// GetChannel reads the channel stored at the given index. It returns
// nil for a slot that holds no channel.
func (d *Device) GetChannel(index int) (*channel.Channel, error) {
	if !d.programming {
		return nil, ErrNotProgramming
	}
	if index < 1 || index > channel.MaxChannels {
		return nil, errors.Errorf("invalid channel %d", index)
	}

	resp, err := d.WriteRead(fmt.Sprintf("CIN,%d", index))
	if err != nil {
		return nil, err
	}
	return decodeChannel(resp)
}

// SetChannel programs the given channel. The channel is validated
// before anything is sent, a rejected write could otherwise leave the
// slot in an undefined state.
func (d *Device) SetChannel(c *channel.Channel) error {
	if !d.programming {
		return ErrNotProgramming
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return d.send(encodeChannel(c))
}

// DeleteChannel clears the slot at the given index.
func (d *Device) DeleteChannel(index int) error {
	if !d.programming {
		return ErrNotProgramming
	}
	if index < 1 || index > channel.MaxChannels {
		return errors.Errorf("invalid channel %d", index)
	}
	return d.send(fmt.Sprintf("DCH,%d", index))
}

// decodeChannel parses the fields of a CIN reply. The all-zero
// frequency of an unprogrammed slot decodes to nil.
func decodeChannel(resp string) (*channel.Channel, error) {
	m := reCIN.FindStringSubmatch(resp)
	if m == nil {
		return nil, errors.Errorf("unexpected response %q to CIN command", resp)
	}

	frequency, err := channel.FrequencyFromCode(m[3])
	if err != nil {
		return nil, err
	}
	if frequency == "0.0000" {
		return nil, nil
	}

	code, err := strconv.Atoi(m[5])
	if err != nil {
		return nil, errors.Errorf("unexpected response %q to CIN command", resp)
	}
	if _, err := tone.Decode(code); err != nil {
		return nil, err
	}

	index, _ := strconv.Atoi(m[1])
	delay, _ := strconv.Atoi(m[6])

	return &channel.Channel{
		Index:      index,
		Name:       m[2],
		Frequency:  frequency,
		Modulation: channel.Modulation(m[4]),
		ToneCode:   code,
		Delay:      delay,
		Lockout:    m[7] == "1",
		Priority:   m[8] == "1",
	}, nil
}

// encodeChannel serializes a channel in the CIN field layout.
func encodeChannel(c *channel.Channel) string {
	return fmt.Sprintf("CIN,%d,%s,%s,%s,%d,%d,%s,%s",
		c.Index,
		c.Name,
		c.FrequencyCode(),
		c.Modulation,
		c.ToneCode,
		c.Delay,
		zeroOne(c.Lockout),
		zeroOne(c.Priority),
	)
}

func zeroOne(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
