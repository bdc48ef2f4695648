// Package app wires application dependencies for the CLI.
//
// It loads the optional config file, builds the concrete store and backends
// from Config, and exposes them via the Wire struct for commands to use.
package app
