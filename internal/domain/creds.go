package domain

import "errors"

// ErrNoCredentials is returned when no credentials have been stored yet.
var ErrNoCredentials = errors.New("no credentials stored (run: qlab creds set)")

// Credentials authenticate us against a remote quantum service.
type Credentials struct {
	Service string `json:"service"` // base URL, e.g. https://quantum.example.com
	Token   string `json:"token"`   // bearer token
}

// CredentialStore persists the service credentials, encrypted at rest.
type CredentialStore interface {
	SaveCredentials(passphrase string, c Credentials) error
	LoadCredentials(passphrase string) (Credentials, error)
}
