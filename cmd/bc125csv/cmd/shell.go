package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocaar/bc125csv/internal/scanner"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Send raw commands to the scanner",
	Long: `Send raw commands to the scanner, one CR terminated line per round trip.
Commands are read from stdin, so a session can be scripted by piping a
file in. In an interactive session, type "exit" or press ^D to leave.`,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := openScanner()
	if err != nil {
		return err
	}
	defer s.Close()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if interactive {
		log.Debug("starting interactive shell")
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !in.Scan() {
			break
		}

		command := strings.TrimSpace(in.Text())
		if command == "" {
			continue
		}
		if interactive && (strings.EqualFold(command, "exit") || strings.EqualFold(command, "quit")) {
			break
		}

		resp, err := s.WriteRead(command)
		if err == scanner.ErrTimeout {
			fmt.Println("No response.")
			continue
		}
		if err != nil {
			return err
		}
		if interactive {
			fmt.Println("< " + resp)
		} else {
			fmt.Println(resp)
		}
	}
	if interactive {
		fmt.Println()
	}

	return errors.Wrap(in.Err(), "read input error")
}
