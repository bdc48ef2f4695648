// Package local implements domain.Backend on the in-process statevector
// engine. It is the default execution target: no credentials, no network,
// and fully deterministic when given a fixed sampling seed.
package local
