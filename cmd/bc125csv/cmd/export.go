package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocaar/bc125csv/internal/csvio"
	"github.com/brocaar/bc125csv/internal/transfer"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Read the scanner channel memory out as csv data",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "-", "csv file to write, - for stdout")
	exportCmd.Flags().IntSliceP("banks", "b", nil, "banks to read (default all)")
	exportCmd.Flags().BoolP("sparse", "s", false, "leave out default squelch, lockout and priority values")
	exportCmd.Flags().BoolP("empty", "e", false, "include empty channels")
}

func runExport(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
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
	sparse, err := cmd.Flags().GetBool("sparse")
	if err != nil {
		return err
	}
	empty, err := cmd.Flags().GetBool("empty")
	if err != nil {
		return err
	}

	s, err := openScanner()
	if err != nil {
		return err
	}
	defer s.Close()

	channels, err := transfer.Export(s, banks, empty)
	if err != nil {
		return err
	}

	w, err := openOutput(output)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := csvio.Write(w, channels, sparse); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"channels": len(channels),
		"banks":    banks,
	}).Info("channel memory exported")

	return nil
}
