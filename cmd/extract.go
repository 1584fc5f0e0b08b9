package cmd

import (
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/orchestrator"
	"github.com/PolarWolf314/enchive-go/internal/ui"
	"github.com/spf13/cobra"
)

var extractDelete bool

var extractCmd = &cobra.Command{
	Use:   "extract [INFILE [OUTFILE]]",
	Short: "Decrypt a file with the secret key",
	Long: `Decrypt INFILE (or standard input) to OUTFILE using the secret key
loaded from the configured secret key file. When OUTFILE is omitted and
INFILE ends in ".enchive", the output defaults to INFILE with that
suffix stripped; with no INFILE at all, both sides default to standard
input/output.

The secret key's protection key is looked up in a running key agent
first; only on a miss are you prompted for a passphrase.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			fail(err)
			return nil
		}

		opts := orchestrator.ExtractOptions{Delete: extractDelete}
		if len(args) > 0 {
			opts.InFile = args[0]
		}
		if len(args) > 1 {
			opts.OutFile = args[1]
		}

		outPath, err := ctx.Extract(opts)
		if err != nil {
			fail(err)
			return nil
		}

		fmt.Println(ui.Success.Sprint("✓") + " Extracted")
		if outPath != "" {
			fmt.Println(ui.Info.Sprint("→") + " " + ui.Path.Sprint(outPath))
		}
		if extractDelete && opts.InFile != "" {
			fmt.Println(ui.Warning.Sprint("⚠") + " removed " + ui.Path.Sprint(opts.InFile))
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractDelete, "delete", false, "remove the input file after a successful extract")
}
