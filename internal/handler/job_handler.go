// internal/handler/job_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
	"github.com/unclebandit/campaign-agent-backend/internal/service"
)

// JobHandler holds the dependencies for job-related HTTP handlers
type JobHandler struct {
	Service *service.AgentService
}

// JobDetails is the response shape for the job details endpoint
type JobDetails struct {
	ID             int        `json:"id"`
	CompanyName    string     `json:"company_name"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	HasSuggestions bool       `json:"has_suggestions"`
	SuggestedAt    *time.Time `json:"suggested_at,omitempty"`
}

// GetJobHandlerWithDetails returns the newest job for a company together
// with whether a suggestion row exists yet
func (h *JobHandler) GetJobHandlerWithDetails(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")

	log.Println("📥 Handler called for company:", company)

	job, err := h.Service.LatestJob(company)
	if err != nil {
		if appErrors.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("❌ Error fetching job:", err)
		http.Error(w, "failed to fetch job: "+err.Error(), http.StatusInternalServerError)
		return
	}

	details := JobDetails{
		ID:          job.ID,
		CompanyName: job.CompanyName,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
		ExpiresAt:   job.ExpiresAt,
	}

	if s, err := h.Service.CurrentSuggestions(company); err == nil {
		details.HasSuggestions = true
		details.SuggestedAt = &s.LastUpdated
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}
