package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/mdsite/internal/site"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	job := site.NewJob()
	if err := s.orchestrator.Submit(job); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, site.ErrQueueFull) {
			code = http.StatusServiceUnavailable
		}
		jsonError(w, err.Error(), code)
		return
	}

	pollURL := fmt.Sprintf("/api/build/%s/status", job.ID)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(BuildIDHeader, job.ID)
	w.Header().Set("Location", pollURL)
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"build_id": job.ID,
		"status":   site.StatusQueued,
		"poll_url": pollURL,
	})
}

func (s *Server) handleBuildStatus(w http.ResponseWriter, r *http.Request) {
	buildID := chi.URLParam(r, "buildID")
	job := s.orchestrator.GetJob(buildID)
	if job == nil {
		jsonError(w, "build not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}
