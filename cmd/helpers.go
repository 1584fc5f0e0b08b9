package cmd

import (
	"fmt"
	"time"

	"github.com/PolarWolf314/enchive-go/internal/ui"
	"github.com/briandowns/spinner"
	figure "github.com/common-nighthawk/go-figure"
)

// startSpinner creates and starts a spinner with the given message unless
// running in verbose or debug mode, where it would just clutter scrollback
// while the KDF runs. Returns the spinner and a function that must be
// deferred to clean it up.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	return s, func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}
		if !verbose && !debug {
			s.Stop()
		}
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}
}

// printBanner prints the ASCII success banner keygen shows on completion.
// Skipped in verbose/debug mode, where it would just add noise to logs.
func printBanner() {
	if verbose || debug {
		return
	}
	fmt.Println()
	figure.NewColorFigure("enchive", "small", "cyan", true).Print()
	fmt.Println()
}
