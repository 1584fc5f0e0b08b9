// Package logger provides structured logging for enchive-go's commands.
//
// Output is formatted with level prefixes colored by fatih/color, and
// verbosity is controlled by two flags every subcommand
// shares:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages in addition to info
//
// Warnings and errors are always shown; a command failure is reported
// through cmd.fail as a single [fatal] line on stderr with no stack trace.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("resolved secret key path: %s", path)
package logger
