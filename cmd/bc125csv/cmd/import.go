package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocaar/bc125csv/internal/csvio"
	"github.com/brocaar/bc125csv/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Program the scanner channel memory from csv data",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringP("input", "i", "-", "csv file to read, - for stdin")
	importCmd.Flags().IntSliceP("banks", "b", nil, "banks to program (default all)")
}

func runImport(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	banks, err := cmd.Flags().GetIntSlice("banks")
	if err != nil {
		return err
	}
	if len(banks) == 0 {
		banks = transfer.AllBanks()
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

	s, err := openScanner()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := transfer.Import(s, channels, banks); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"channels": len(channels),
		"banks":    banks,
	}).Info("channel memory programmed")

	return nil
}

// reportRows logs every row error of an import pass on its own line.
func reportRows(err error) error {
	var verrs csvio.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		log.WithField("line", e.Line).Error(e.Err)
	}
	return errors.Errorf("csv data contains %d invalid rows", len(verrs))
}
