package cmd

// fail logs a single-line, non-leaky error message and exits non-zero via
// the shared Logger's fatal path. Per the error handling design, there are
// no stack traces and passphrase/unknown-key failures share their wording
// upstream in apperrors.ErrAuthenticationFailed.
func fail(err error) {
	Logger.Fatalf("%s", err.Error())
}
