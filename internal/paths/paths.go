// Package paths resolves the default locations of enchive-go's two key
// files, following the config-directory discovery convention the
// specification treats as an external collaborator: $XDG_CONFIG_HOME (else
// $HOME/.config) on Unix, and the OS application-data directory on Windows.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
)

const (
	defaultPublicKeyName = "enchive.pub"
	defaultSecretKeyName = "enchive.sec"
	configDirName        = "enchive"
)

// ConfigDir returns the directory that holds enchive.pub and enchive.sec,
// creating it (owner-only) if it does not already exist.
func ConfigDir() (string, error) {
	base, err := configBase()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("%w: creating config directory %s: %v", apperrors.ErrIO, dir, err)
	}
	return dir, nil
}

func configBase() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: resolving home directory: %v", apperrors.ErrNotFound, err)
		}
		return home, nil
	}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: $HOME is unset: %v", apperrors.ErrNotFound, err)
	}
	return filepath.Join(home, ".config"), nil
}

// DefaultPublicKeyPath returns the default enchive.pub location.
func DefaultPublicKeyPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultPublicKeyName), nil
}

// DefaultSecretKeyPath returns the default enchive.sec location.
func DefaultSecretKeyPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultSecretKeyName), nil
}
