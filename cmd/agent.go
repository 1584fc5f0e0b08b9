package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PolarWolf314/enchive-go/internal/agent"
	"github.com/spf13/cobra"
)

// agentCmd is not part of the public interface: it is the re-exec target
// SpawnAgent launches to run the serve protocol as a detached process.
// The protection key arrives over fd 3, an inherited pipe, rather than
// through any argument or environment variable, so it never touches a
// process listing or the environment block.
var agentCmd = &cobra.Command{
	Use:    "agent",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ivHex, err := cmd.Flags().GetString("iv")
		if err != nil {
			return err
		}
		timeoutSeconds, err := cmd.Flags().GetInt("timeout")
		if err != nil {
			return err
		}

		ivBytes, err := hex.DecodeString(ivHex)
		if err != nil || len(ivBytes) != 8 {
			return fmt.Errorf("agent: invalid --iv %q", ivHex)
		}
		var iv [8]byte
		copy(iv[:], ivBytes)

		keyFile := os.NewFile(3, "agent-key-pipe")
		if keyFile == nil {
			return fmt.Errorf("agent: no key pipe on fd 3")
		}
		defer keyFile.Close()

		var protect [32]byte
		if _, err := io.ReadFull(keyFile, protect[:]); err != nil {
			return fmt.Errorf("agent: reading protection key: %w", err)
		}

		return agent.Serve(iv, protect, time.Duration(timeoutSeconds)*time.Second)
	},
}

func init() {
	agentCmd.Flags().String("iv", "", "hex-encoded secret-key Salt/IV")
	agentCmd.Flags().Int("timeout", defaultAgentTimeoutSeconds, "inactivity timeout in seconds")
}
