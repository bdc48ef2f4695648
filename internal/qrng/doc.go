// Package qrng harvests random numbers from a quantum backend.
//
// Each shot of a uniform-superposition circuit yields one measurement
// bitstring; the service runs jobs wide enough for the request, converts
// bitstrings to integers, and normalises when floats are wanted. With the
// local backend and a fixed seed the harvest is reproducible; against real
// hardware it is genuinely random.
package qrng
