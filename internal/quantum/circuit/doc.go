// Package circuit builds domain.Circuit values gate by gate.
//
// The builder records gates in order and validates targets on Build, so
// callers get one error for a malformed circuit instead of panics deep in a
// backend. Convenience constructors cover the common didactic circuits:
// uniform superposition for random-number harvesting and parameterised
// feature-map circuits for quantum kernels.
package circuit
