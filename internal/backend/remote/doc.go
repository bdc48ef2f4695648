// Package remote provides the HTTP implementation of domain.Backend for a
// hosted quantum service.
//
// Supported operations:
//   - Listing the backends the service exposes.
//   - Submitting a job (circuit + shot count) and waiting for its result.
//
// All requests are JSON over HTTP, authenticated with a bearer token, and
// accept a context for cancellation and deadlines. Non-2xx statuses are
// returned as errors carrying the HTTP method, full URL and status text; a
// 401 maps to domain.ErrUnauthorized so callers can point users at
// `qlab creds set`.
package remote
