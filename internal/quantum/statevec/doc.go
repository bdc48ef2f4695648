// Package statevec is a minimal statevector engine: it holds the 2^n complex
// amplitudes of an n-qubit register and applies the gate set defined in
// internal/domain.
//
// It exists to execute the app's demonstration circuits (superposition
// sampling and feature-map fidelities) on the local machine. It is not a
// general-purpose simulator: no noise model, no mid-circuit measurement, and
// a hard qubit cap to keep memory bounded.
package statevec
