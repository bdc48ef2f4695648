// Package commands defines the qlab CLI and wires dependencies for subcommands.
//
// Commands
//
//   - lcg       Generate pseudo-random numbers with a linear congruential generator
//   - qrng      Harvest random numbers from a quantum backend
//   - backends  List the backends the remote service exposes
//   - creds     Store or show the remote service credentials
//   - svm       Fit a linear SVM on a synthetic 2-D dataset
//   - qsvm      Fit a quantum-kernel SVM and compare it to a classical baseline
//
// # Implementation
//
// The root command loads the optional config file and builds a dependency
// graph (credential store, local backend, HTTP client) before any subcommand
// runs, so handlers share one app context.
package commands
