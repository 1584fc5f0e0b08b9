package cmd

import (
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/orchestrator"
	"github.com/PolarWolf314/enchive-go/internal/ui"
	"github.com/spf13/cobra"
)

var archiveDelete bool

var archiveCmd = &cobra.Command{
	Use:   "archive [INFILE [OUTFILE]]",
	Short: "Encrypt a file for the owner of the public key",
	Long: `Encrypt INFILE (or standard input) to OUTFILE under the loaded
public key. When OUTFILE is omitted and INFILE is a file, the output is
written to "<INFILE>.enchive"; with no INFILE at all, both sides default
to standard input/output.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			fail(err)
			return nil
		}

		opts := orchestrator.ArchiveOptions{Delete: archiveDelete}
		if len(args) > 0 {
			opts.InFile = args[0]
		}
		if len(args) > 1 {
			opts.OutFile = args[1]
		}

		outPath, err := ctx.Archive(opts)
		if err != nil {
			fail(err)
			return nil
		}

		fmt.Println(ui.Success.Sprint("✓") + " Archived")
		if outPath != "" {
			fmt.Println(ui.Info.Sprint("→") + " " + ui.Path.Sprint(outPath))
		}
		if archiveDelete && opts.InFile != "" {
			fmt.Println(ui.Warning.Sprint("⚠") + " removed " + ui.Path.Sprint(opts.InFile))
		}
		return nil
	},
}

func init() {
	archiveCmd.Flags().BoolVar(&archiveDelete, "delete", false, "remove the input file after a successful archive")
}
