package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/orchestrator"
	"github.com/PolarWolf314/enchive-go/internal/ui"
	"github.com/spf13/cobra"
)

const (
	defaultKeyDeriveIterations    = 18
	defaultSeckeyDeriveIterations = 30
)

var (
	keygenDeriveArg   string
	keygenEdit        bool
	keygenForce       bool
	keygenFingerprint bool
	keygenIterations  int
	keygenPlain       bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new key pair",
	Long: `Generate a fresh secret/public key pair, or rewrap an existing one.

By default the secret key is generated from the operating system's
entropy source and protected with a passphrase you are prompted for.
--derive instead derives the secret key deterministically from a
passphrase, so it can be regenerated without ever touching disk.
--edit rewraps an existing secret key under a new passphrase and
iteration count without changing the key itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		derive := cmd.Flags().Changed("derive")
		deriveIexp := defaultSeckeyDeriveIterations
		if arg := strings.TrimSpace(keygenDeriveArg); derive && arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil {
				fail(fmt.Errorf("%w: --derive argument must be an integer, got %q", apperrors.ErrBadArgument, arg))
				return nil
			}
			deriveIexp = n
		}
		if derive && keygenEdit {
			fail(fmt.Errorf("%w: --edit and --derive are mutually exclusive", apperrors.ErrBadArgument))
			return nil
		}

		ctx, err := newContext()
		if err != nil {
			fail(err)
			return nil
		}

		spin, cleanup := startSpinner("Generating key...")
		defer cleanup()

		result, err := ctx.Keygen(orchestrator.KeygenOptions{
			Derive:      derive,
			DeriveIexp:  deriveIexp,
			Edit:        keygenEdit,
			Force:       keygenForce,
			Fingerprint: keygenFingerprint,
			Iterations:  keygenIterations,
			Plain:       keygenPlain,
		})
		spin.Stop()
		if err != nil {
			if errors.Is(err, apperrors.ErrClobber) {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Info.Sprint("→")+" Use "+ui.Flag.Sprint("--force")+" to overwrite, or "+ui.Flag.Sprint("--edit")+" to rewrap the existing key")
			}
			fail(err)
			return nil
		}

		fmt.Println(ui.Success.Sprint("✓") + " Key pair written")
		fmt.Println(ui.Info.Sprint("→") + " " + ui.Path.Sprint(ctx.PubKeyPath))
		fmt.Println(ui.Info.Sprint("→") + " " + ui.Path.Sprint(ctx.SecKeyPath))
		if result.Fingerprint != "" {
			fmt.Println(ui.Info.Sprint("keyid:") + " " + ui.Highlight.Sprint(result.Fingerprint))
		} else {
			fmt.Println(ui.Muted.Sprint("run with --fingerprint to print the key's fingerprint"))
		}
		printBanner()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("enchive archive <file>") + " to encrypt something with this key")
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenDeriveArg, "derive", "", "derive the secret key from a passphrase instead of entropy, with optional cost exponent 5..31")
	keygenCmd.Flags().Lookup("derive").NoOptDefVal = " "
	keygenCmd.Flags().BoolVarP(&keygenEdit, "edit", "e", false, "rewrap an existing secret key under a new passphrase")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "overwrite existing key files")
	keygenCmd.Flags().BoolVarP(&keygenFingerprint, "fingerprint", "i", false, "print the new key's fingerprint")
	keygenCmd.Flags().IntVarP(&keygenIterations, "iterations", "k", defaultKeyDeriveIterations, "KDF cost exponent protecting the secret key file (5..31)")
	keygenCmd.Flags().BoolVarP(&keygenPlain, "plain", "u", false, "store the secret key unprotected")
}
