package local

import (
	"context"
	"fmt"
	"sync"

	"qlab/internal/domain"
	"qlab/internal/quantum/statevec"
	"qlab/internal/rand/lcg"
)

// Name is the backend name reported in results.
const Name = "local-statevector"

// Backend runs circuits on the statevector engine. Sampling randomness
// comes from an LCG seeded from the OS unless NewSeeded is used.
type Backend struct {
	mu  sync.Mutex
	src *lcg.LCG
}

// New returns a backend with OS-seeded sampling.
func New() *Backend { return &Backend{src: lcg.FromCryptoSeed()} }

// NewSeeded returns a backend whose measurement sampling is reproducible.
func NewSeeded(seed uint64) *Backend { return &Backend{src: lcg.New(seed)} }

// Info describes this backend in the same shape remote services use.
func (b *Backend) Info() domain.BackendInfo {
	return domain.BackendInfo{Name: Name, Qubits: statevec.MaxQubits, Status: "online"}
}

// Run simulates the circuit and samples job.Shots measurement outcomes.
func (b *Backend) Run(ctx context.Context, job domain.Job) (domain.JobResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.JobResult{}, err
	}
	if job.Shots < 1 {
		return domain.JobResult{}, fmt.Errorf("local: shots %d < 1", job.Shots)
	}
	st, err := statevec.Run(job.Circuit)
	if err != nil {
		return domain.JobResult{}, err
	}

	b.mu.Lock()
	mem := st.Sample(job.Shots, b.src)
	b.mu.Unlock()

	counts := make(domain.Counts, len(mem))
	for _, bits := range mem {
		counts[bits]++
	}
	res := domain.JobResult{Backend: Name, Shots: job.Shots, Counts: counts}
	if job.Memory {
		res.Memory = mem
	}
	return res, nil
}

var _ domain.Backend = (*Backend)(nil)
