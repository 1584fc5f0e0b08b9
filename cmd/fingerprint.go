package cmd

import (
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/ui"
	"github.com/spf13/cobra"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the public key's fingerprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			fail(err)
			return nil
		}
		fp, err := ctx.Fingerprint()
		if err != nil {
			fail(err)
			return nil
		}
		fmt.Println(ui.Highlight.Sprint(fp))
		return nil
	},
}
