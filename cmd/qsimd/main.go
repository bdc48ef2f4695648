package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"qlab/internal/backend/local"
	"qlab/internal/domain"
)

// maxShots caps a single job so one request cannot pin the process.
const maxShots = 1 << 20

type server struct {
	be    *local.Backend
	token string
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	token := flag.String("token", "", "require this bearer token (empty disables auth)")
	seed := flag.Uint64("seed", 0, "fix the sampling seed (0 means OS-seeded)")
	flag.Parse()

	be := local.New()
	if *seed != 0 {
		be = local.NewSeeded(*seed)
	}
	s := &server{be: be, token: *token}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/backends", s.logged(s.authed(s.handleBackends)))
	mux.HandleFunc("/v1/jobs", s.logged(s.authed(s.handleJobs)))

	log.Println("qsimd listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func (s *server) handleBackends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, []domain.BackendInfo{s.be.Info()})
}

func (s *server) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if job.Shots > maxShots {
		http.Error(w, "too many shots", http.StatusBadRequest)
		return
	}
	res, err := s.be.Run(r.Context(), job)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func (s *server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			http.Error(w, "bad or missing bearer token", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// statusWriter remembers the status code for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (s *server) logged(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start).Round(time.Microsecond))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
