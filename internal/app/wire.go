package app

import (
	"net/http"

	"qlab/internal/backend/local"
	"qlab/internal/backend/remote"
	"qlab/internal/domain"
	"qlab/internal/store"
)

// Wire bundles the stores, backends and clients for the CLI.
type Wire struct {
	Creds   domain.CredentialStore
	Local   *local.Backend
	HTTP    *http.Client
	Service string
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Wire{
		Creds:   store.NewFileStore(cfg.Home),
		Local:   local.New(),
		HTTP:    httpClient,
		Service: cfg.Service,
	}
}

// Remote returns a client for the remote service. An explicitly configured
// service URL (flag or config file) wins over the one stored with the
// credentials.
func (w *Wire) Remote(creds domain.Credentials) *remote.Client {
	base := creds.Service
	if w.Service != "" {
		base = w.Service
	}
	return remote.New(base, creds.Token, w.HTTP)
}
