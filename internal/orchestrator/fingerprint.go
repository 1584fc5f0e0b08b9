package orchestrator

import "github.com/PolarWolf314/enchive-go/internal/keyfile"

// Fingerprint implements the fingerprint command: load the public key and
// return its rendered fingerprint.
func (ctx *Context) Fingerprint() (string, error) {
	public, err := keyfile.ReadPublicKey(ctx.PubKeyPath)
	if err != nil {
		return "", err
	}
	fp := keyfile.Fingerprint(public)
	return keyfile.RenderFingerprint(fp), nil
}
