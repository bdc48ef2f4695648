package local_test

import (
	"context"
	"testing"

	"qlab/internal/backend/local"
	"qlab/internal/domain"
	"qlab/internal/quantum/circuit"
)

func TestRun_CountsSumToShots(t *testing.T) {
	c, err := circuit.Uniform(3)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	be := local.NewSeeded(1)
	res, err := be.Run(context.Background(), domain.Job{Circuit: c, Shots: 500})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Backend != local.Name {
		t.Fatalf("want backend %q, got %q", local.Name, res.Backend)
	}
	if got := res.Counts.Shots(); got != 500 {
		t.Fatalf("want 500 recorded shots, got %d", got)
	}
	if len(res.Memory) != 0 {
		t.Fatalf("memory returned without being requested")
	}
}

func TestRun_MemoryMatchesCounts(t *testing.T) {
	c, err := circuit.Uniform(2)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	be := local.NewSeeded(2)
	res, err := be.Run(context.Background(), domain.Job{Circuit: c, Shots: 200, Memory: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Memory) != 200 {
		t.Fatalf("want 200 memory entries, got %d", len(res.Memory))
	}
	recount := make(domain.Counts)
	for _, bits := range res.Memory {
		recount[bits]++
	}
	for k, v := range res.Counts {
		if recount[k] != v {
			t.Fatalf("counts and memory disagree for %q: %d vs %d", k, v, recount[k])
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	c, err := circuit.Uniform(4)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	r1, err := local.NewSeeded(7).Run(context.Background(), domain.Job{Circuit: c, Shots: 100, Memory: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	r2, err := local.NewSeeded(7).Run(context.Background(), domain.Job{Circuit: c, Shots: 100, Memory: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := range r1.Memory {
		if r1.Memory[i] != r2.Memory[i] {
			t.Fatalf("shot %d differs across identical seeds", i)
		}
	}
}

func TestRun_RejectsBadJobs(t *testing.T) {
	be := local.NewSeeded(1)
	c, _ := circuit.Uniform(2)
	if _, err := be.Run(context.Background(), domain.Job{Circuit: c, Shots: 0}); err == nil {
		t.Fatal("expected error for zero shots")
	}
	bad := domain.Circuit{Qubits: 2, Gates: []domain.Gate{{Kind: domain.GateH, Targets: []int{5}}}}
	if _, err := be.Run(context.Background(), domain.Job{Circuit: bad, Shots: 10}); err == nil {
		t.Fatal("expected error for invalid circuit")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := be.Run(ctx, domain.Job{Circuit: c, Shots: 10}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
