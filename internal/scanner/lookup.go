package scanner

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial/enumerator"
)

// usb identity of the BC125AT family.
const usbVendorID = "1965"

var usbProductIDs = []string{"0017", "0018"}

// Lookup searches the usb serial ports for a connected scanner and
// returns the port name of the first match. It returns ErrNotFound when
// no port carries the scanner's usb identity.
func Lookup() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", errors.Wrap(err, "list serial ports error")
	}
	return lookup(ports)
}

func lookup(ports []*enumerator.PortDetails) (string, error) {
	for _, port := range ports {
		if !port.IsUSB || !strings.EqualFold(port.VID, usbVendorID) {
			continue
		}
		for _, pid := range usbProductIDs {
			if strings.EqualFold(port.PID, pid) {
				log.WithFields(log.Fields{
					"port": port.Name,
					"vid":  port.VID,
					"pid":  port.PID,
				}).Debug("scanner: usb serial port matched")
				return port.Name, nil
			}
		}
	}
	return "", ErrNotFound
}
