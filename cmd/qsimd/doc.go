// Package main runs the local HTTP quantum-simulator daemon used by qlab
// during development and tests. It speaks the same wire protocol as a hosted
// quantum service, backed by the in-process statevector engine, so the
// remote-backend path can be exercised end to end without real hardware.
//
// HTTP API
//
//	GET /v1/backends
//	    List the backends this daemon fronts (always exactly one).
//
//	POST /v1/jobs { "circuit": ..., "shots": N, "memory": bool }
//	    Execute the circuit N times and return the aggregated counts, plus
//	    the per-shot bitstrings when memory is requested.
//
// Behaviour
//
//   - With --token set, every request must carry "Authorization: Bearer
//     <token>"; mismatches get 401.
//   - All state is in memory; nothing survives process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - A lightweight access log records method, path, status and duration.
//   - The default listen address is :8080.
package main
