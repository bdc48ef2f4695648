// Package store provides file-based persistence for qlab's state.
//
// The one secret it holds is the remote service credentials, serialised as
// JSON and encrypted under a passphrase (scrypt key derivation,
// ChaCha20-Poly1305 sealing). Files live under the user's configured home
// directory and all writes go through a temp file and rename.
package store
