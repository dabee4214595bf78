package cmd

import (
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brocaar/bc125csv/internal/config"
)

const configTemplate = `[general]
# Log level
#
# debug=5, info=4, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}


# Scanner settings.
[scanner]
# Serial port.
#
# The serial port the scanner is connected to (e.g. /dev/ttyACM0). When left
# blank, the port is detected by the usb vendor and product id of the
# scanner.
port="{{ .Scanner.Port }}"

# Baud rate.
#
# The baud rate of the serial connection. Valid rates are 4800, 9600,
# 19200, 38400, 57600 and 115200.
baud_rate={{ .Scanner.BaudRate }}

# Read timeout.
#
# The maximum time to wait for a reply of the scanner before the command
# is reported as failed.
read_timeout="{{ .Scanner.ReadTimeout }}"

# Virtual scanner.
#
# When set to true, commands run against an emulated scanner in memory
# instead of a connected device.
virtual={{ .Scanner.Virtual }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the bc125csv configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))
		err := t.Execute(os.Stdout, &config.C)
		if err != nil {
			return errors.Wrap(err, "execute config template error")
		}
		return nil
	},
}
