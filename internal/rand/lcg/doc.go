// Package lcg implements a linear congruential pseudo-random generator.
//
// The recurrence is x_{i+1} = (a*x_i + c) mod m, with outputs normalised to
// [0, 1) by dividing by the modulus. It is deterministic by construction: the
// same (a, c, m, seed) always yields the same sequence, which is what makes
// it useful for reproducible datasets, shuffles and sampling throughout the
// app. It is not cryptographically secure and must never be used for key
// material.
package lcg
