package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"qlab/internal/backend/remote"
	"qlab/internal/domain"
	"qlab/internal/quantum/circuit"
)

func authed(token string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		h(w, r)
	}
}

func TestBackends_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(authed("sekrit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/backends" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode([]domain.BackendInfo{{Name: "sim-a", Qubits: 12, Status: "online"}})
	}))
	defer srv.Close()

	c := remote.New(srv.URL, "sekrit", nil)
	infos, err := c.Backends(context.Background())
	if err != nil {
		t.Fatalf("backends: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "sim-a" || infos[0].Qubits != 12 {
		t.Fatalf("unexpected backends: %+v", infos)
	}
}

func TestRun_RoundTripsJob(t *testing.T) {
	srv := httptest.NewServer(authed("tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/jobs" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var job domain.Job
		if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if job.Circuit.Qubits != 2 || job.Shots != 64 {
			http.Error(w, "unexpected job", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.JobResult{
			Backend: "sim-a",
			Shots:   job.Shots,
			Counts:  domain.Counts{"00": 30, "11": 34},
		})
	}))
	defer srv.Close()

	c := remote.New(srv.URL, "tok", nil)
	circ, err := circuit.Uniform(2)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	res, err := c.Run(context.Background(), domain.Job{Circuit: circ, Shots: 64})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Counts.Shots() != 64 {
		t.Fatalf("want 64 shots back, got %d", res.Counts.Shots())
	}
}

func TestRun_BadTokenIsErrUnauthorized(t *testing.T) {
	srv := httptest.NewServer(authed("right", func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := remote.New(srv.URL, "wrong", nil)
	_, err := c.Backends(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestRun_SurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(authed("tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := remote.New(srv.URL, "tok", nil)
	circ, _ := circuit.Uniform(1)
	if _, err := c.Run(context.Background(), domain.Job{Circuit: circ, Shots: 1}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
