package orchestrator

import (
	"fmt"

	"github.com/PolarWolf314/enchive-go/internal/agent"
	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/keyfile"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// loadSecretKey reads and unwraps the secret key at ctx.SecKeyPath: when
// ctx.AgentTimeout is positive the agent is consulted first, and only on any agent-read failure (no agent,
// stale key) does it fall back to the passphrase provider — the one local
// recovery path the error taxonomy allows. A freshly accepted passphrase
// spawns an agent when ctx.AgentTimeout is positive.
func (ctx *Context) loadSecretKey() ([primitives.ScalarSize]byte, error) {
	var scalar [primitives.ScalarSize]byte

	header, err := keyfile.ReadSecretKeyHeader(ctx.SecKeyPath)
	if err != nil {
		return scalar, err
	}

	if !header.Protected {
		return header.Unwrap([32]byte{})
	}

	if ctx.AgentTimeout > 0 {
		if cached, ok := agent.Read(header.Salt); ok && header.VerifyProtectionKey(cached) {
			scalar, err = header.Unwrap(cached)
			primitives.Zero(cached[:])
			return scalar, err
		}
	}

	passphrase, err := ctx.Passphrase.Prompt("passphrase: ", false)
	if err != nil {
		return scalar, err
	}
	defer primitives.Zero(passphrase)

	protect, err := header.DeriveProtectionKey(passphrase)
	if err != nil {
		return scalar, fmt.Errorf("derive protection key: %w", err)
	}
	defer primitives.Zero(protect[:])

	if !header.VerifyProtectionKey(protect) {
		return scalar, apperrors.ErrAuthenticationFailed
	}

	if ctx.AgentTimeout > 0 {
		SpawnAgent(header.Salt, protect, int(ctx.AgentTimeout.Seconds()))
	}

	return header.Unwrap(protect)
}
