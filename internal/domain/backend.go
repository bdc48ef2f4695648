package domain

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when the remote service rejects our bearer token.
var ErrUnauthorized = errors.New("service rejected credentials")

// BackendInfo describes an execution backend as advertised by a service.
type BackendInfo struct {
	Name   string `json:"name"`
	Qubits int    `json:"qubits"`
	Status string `json:"status"`
}

// Job asks a backend to execute a circuit a number of times.
// With Memory set, the result carries the per-shot bitstrings in execution
// order, not just the aggregated counts.
type Job struct {
	Circuit Circuit `json:"circuit"`
	Shots   int     `json:"shots"`
	Memory  bool    `json:"memory,omitempty"`
}

// JobResult is what a backend returns for a completed job.
type JobResult struct {
	Backend string   `json:"backend"`
	Shots   int      `json:"shots"`
	Counts  Counts   `json:"counts"`
	Memory  []string `json:"memory,omitempty"`
}

// Backend executes quantum circuits. Implementations block until the result
// is available; ctx bounds the wait.
type Backend interface {
	Run(ctx context.Context, job Job) (JobResult, error)
}

// BackendLister enumerates the backends a service exposes.
type BackendLister interface {
	Backends(ctx context.Context) ([]BackendInfo, error)
}
