package provider

import (
	"errors"
	"fmt"
)

// MissingCredentialError reports that no API key was configured for the
// selected provider. It is returned before any network call is attempted.
type MissingCredentialError struct {
	Provider string
	EnvVar   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential for provider %q: environment variable %s is not set", e.Provider, e.EnvVar)
}

// IsMissingCredential reports whether err is (or wraps) a MissingCredentialError.
func IsMissingCredential(err error) bool {
	var mce *MissingCredentialError
	return errors.As(err, &mce)
}
