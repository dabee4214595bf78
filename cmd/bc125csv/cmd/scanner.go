package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/brocaar/bc125csv/internal/config"
	"github.com/brocaar/bc125csv/internal/scanner"
)

var validBaudRates = []int{4800, 9600, 19200, 38400, 57600, 115200}

// openScanner resolves and opens the scanner to operate on: the
// in-memory stub when requested, the configured serial port, or the
// port found by usb lookup. The device must identify itself as a
// supported model before it is handed to the caller.
func openScanner() (scanner.Scanner, error) {
	if config.C.Scanner.Virtual {
		log.Warning("using an emulated scanner, no device will be programmed")
		return scanner.NewStub(""), nil
	}

	rateValid := false
	for _, rate := range validBaudRates {
		if config.C.Scanner.BaudRate == rate {
			rateValid = true
			break
		}
	}
	if !rateValid {
		return nil, errors.Errorf("invalid baud rate %d", config.C.Scanner.BaudRate)
	}

	port := config.C.Scanner.Port
	if port == "" {
		var err error
		port, err = scanner.Lookup()
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Access(port); err != nil {
		return nil, err
	}

	dev, err := scanner.Open(port, config.C.Scanner.BaudRate, config.C.Scanner.ReadTimeout)
	if err != nil {
		return nil, err
	}

	model, err := dev.Model()
	if err != nil {
		dev.Close()
		return nil, errors.Wrap(err, "could not get model name from scanner")
	}
	if !scanner.IsSupported(model) {
		dev.Close()
		return nil, errors.Errorf("unsupported scanner model %s", model)
	}

	log.WithFields(log.Fields{
		"port":  port,
		"model": model,
	}).Info("scanner connected")

	return dev, nil
}

// openInput opens the csv source, "-" meaning stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s error", path)
	}
	return f, nil
}

// openOutput opens the csv destination, "-" meaning stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s error", path)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
