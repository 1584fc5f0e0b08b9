package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger prints command output with a verbosity controlled by two flags
// shared across every enchive-go subcommand: --verbose and --debug.
type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}

// Fatalf logs an error and exits the process with status 1. cmd.fail
// reports every command failure through it, as a single [fatal] line.
func (l Logger) Fatalf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[fatal] ")+msg+"\n", args...)
	os.Exit(1)
}
