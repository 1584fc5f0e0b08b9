package orchestrator

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
	"github.com/PolarWolf314/enchive-go/internal/entropy"
	"github.com/PolarWolf314/enchive-go/internal/kdf"
	"github.com/PolarWolf314/enchive-go/internal/keyfile"
	"github.com/PolarWolf314/enchive-go/internal/primitives"
)

// KeygenOptions controls how keygen produces its secret scalar and what it
// does with the result. Derive and Edit are mutually exclusive.
type KeygenOptions struct {
	// Derive generates the secret scalar deterministically from a
	// passphrase instead of from entropy, using DeriveIexp as the KDF cost
	// exponent and a zero salt.
	Derive     bool
	DeriveIexp int

	// Edit loads the existing secret key and rewraps it under a freshly
	// prompted passphrase and iteration count, rather than generating a
	// new one.
	Edit bool

	// Force allows overwriting existing key files; without it keygen
	// refuses when either output already exists (unless Edit).
	Force bool

	// Fingerprint additionally renders the new public key's fingerprint
	// into KeygenResult.Fingerprint.
	Fingerprint bool

	// Iterations is the KDF cost exponent used to protect the written
	// secret-key file. Ignored when Plain is true.
	Iterations int

	// Plain stores the secret key unprotected (iterations byte 0).
	Plain bool
}

// KeygenResult reports the artifacts keygen produced, for callers that
// want to render a fingerprint or success banner without re-reading the
// files it just wrote.
type KeygenResult struct {
	Public      [primitives.ScalarSize]byte
	Fingerprint string
}

// Keygen implements the keygen command: generate or derive a secret
// scalar, compute its public counterpart, and write both key files.
func (ctx *Context) Keygen(opts KeygenOptions) (*KeygenResult, error) {
	if opts.Derive && opts.Edit {
		return nil, fmt.Errorf("%w: --edit and --derive are mutually exclusive", apperrors.ErrBadArgument)
	}

	if !opts.Edit && !opts.Force {
		for _, path := range []string{ctx.PubKeyPath, ctx.SecKeyPath} {
			if fileExists(path) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrClobber, path)
			}
		}
	}

	var secret [primitives.ScalarSize]byte
	var err error

	switch {
	case opts.Edit:
		secret, err = ctx.loadSecretKey()
		if err != nil {
			return nil, err
		}
	case opts.Derive:
		secret, err = deriveScalarFromPassphrase(ctx, opts.DeriveIexp)
		if err != nil {
			return nil, err
		}
	default:
		s, genErr := entropy.Scalar(ctx.Entropy)
		if genErr != nil {
			return nil, fmt.Errorf("generate secret key: %w", genErr)
		}
		secret = *s
	}
	primitives.ClampScalar(&secret)
	defer primitives.Zero(secret[:])

	public, err := primitives.BasePoint(&secret)
	if err != nil {
		return nil, err
	}

	result := &KeygenResult{Public: public}
	if opts.Fingerprint {
		fp := keyfile.Fingerprint(public)
		result.Fingerprint = keyfile.RenderFingerprint(fp)
	}

	secTarget, err := ctx.writeSecretKey(secret, opts)
	if err != nil {
		ctx.Release()
		return nil, err
	}
	if err := keyfile.WritePublicKey(ctx.PubKeyPath, public); err != nil {
		ctx.Release()
		return nil, err
	}

	secTarget.Commit()
	ctx.cleanup.Register(ctx.PubKeyPath).Commit()
	return result, nil
}

func (ctx *Context) writeSecretKey(secret [primitives.ScalarSize]byte, opts KeygenOptions) (*cleanupTarget, error) {
	var passphrase []byte
	iexp := opts.Iterations

	if !opts.Plain {
		p, err := ctx.Passphrase.Prompt("secret key passphrase: ", true)
		if err != nil {
			return nil, err
		}
		passphrase = p
	}
	defer primitives.Zero(passphrase)

	if len(passphrase) == 0 {
		iexp = 0
	}

	// Register only once the file has actually been (re)written: an
	// --edit whose rewrap prompt fails before ever touching the file on
	// disk must not have its existing secret key deleted by Release.
	if err := keyfile.WriteSecretKey(ctx.SecKeyPath, secret, passphrase, iexp, ctx.Entropy); err != nil {
		return nil, err
	}
	return ctx.cleanup.Register(ctx.SecKeyPath), nil
}

func deriveScalarFromPassphrase(ctx *Context, iexp int) ([primitives.ScalarSize]byte, error) {
	var secret [primitives.ScalarSize]byte
	if err := kdf.ValidateCostExponent(iexp); err != nil {
		return secret, err
	}
	passphrase, err := ctx.Passphrase.Prompt("secret key passphrase: ", true)
	if err != nil {
		return secret, err
	}
	defer primitives.Zero(passphrase)

	secret, err = kdf.Derive(passphrase, iexp, [8]byte{})
	if err != nil {
		return secret, fmt.Errorf("derive secret key: %w", err)
	}
	return secret, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
