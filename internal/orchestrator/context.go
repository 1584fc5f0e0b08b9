package orchestrator

import (
	"time"

	"github.com/PolarWolf314/enchive-go/internal/entropy"
	logger "github.com/PolarWolf314/enchive-go/internal/logging"
)

// PassphraseProvider is the external collaborator that prompts a human (or
// a test) for a passphrase. The core cryptographic and key-management code
// never touches a terminal directly; it only ever calls this interface.
type PassphraseProvider interface {
	// Prompt asks the user for a passphrase with the given prompt text.
	// confirm additionally asks for the same passphrase twice and fails
	// if they don't match, as keygen does when protecting a fresh key.
	Prompt(prompt string, confirm bool) ([]byte, error)
}

// Context carries the resolved paths, agent policy, entropy source, and
// logger a command needs, replacing the teacher's package-level mutable
// options with an explicit value passed into every operation.
type Context struct {
	PubKeyPath string
	SecKeyPath string

	// AgentTimeout is the duration a freshly launched agent will serve
	// before exiting. Zero disables the agent entirely (--no-agent).
	AgentTimeout time.Duration

	Entropy    entropy.Source
	Passphrase PassphraseProvider
	Logger     logger.Logger

	// cleanup is the stack of paths registered as "commit or delete"
	// targets for the current command; see Release.
	cleanup *cleanupStack
}

// NewContext returns a Context with a fresh, empty cleanup stack.
func NewContext(pubKeyPath, secKeyPath string, agentTimeout time.Duration, src entropy.Source, pass PassphraseProvider, log logger.Logger) *Context {
	return &Context{
		PubKeyPath:   pubKeyPath,
		SecKeyPath:   secKeyPath,
		AgentTimeout: agentTimeout,
		Entropy:      src,
		Passphrase:   pass,
		Logger:       log,
		cleanup:      &cleanupStack{},
	}
}
