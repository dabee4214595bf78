package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocaar/bc125csv/internal/csvio"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify csv data without programming the scanner",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringP("input", "i", "-", "csv file to read, - for stdin")
}

func runVerify(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}

	r, err := openInput(input)
	if err != nil {
		return err
	}
	defer r.Close()

	channels, err := csvio.Read(r)
	if err != nil {
		return reportRows(err)
	}

	log.WithField("channels", len(channels)).Debug("no errors found")

	return nil
}
