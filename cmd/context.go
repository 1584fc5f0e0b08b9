package cmd

import (
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/entropy"
	"github.com/PolarWolf314/enchive-go/internal/orchestrator"
	"github.com/PolarWolf314/enchive-go/internal/paths"
)

// newContext resolves the shared --pubkey/--seckey/--agent flags into an
// orchestrator.Context, falling back to the config-directory defaults when
// a path flag was not given.
func newContext() (*orchestrator.Context, error) {
	pub := pubKeyPath
	if pub == "" {
		p, err := paths.DefaultPublicKeyPath()
		if err != nil {
			return nil, fmt.Errorf("resolve default public key path: %w", err)
		}
		pub = p
	}

	sec := secKeyPath
	if sec == "" {
		p, err := paths.DefaultSecretKeyPath()
		if err != nil {
			return nil, fmt.Errorf("resolve default secret key path: %w", err)
		}
		sec = p
	}

	timeout, err := agentTimeout()
	if err != nil {
		return nil, err
	}

	return orchestrator.NewContext(pub, sec, timeout, entropy.OS, orchestrator.TerminalPassphrase{}, Logger), nil
}
