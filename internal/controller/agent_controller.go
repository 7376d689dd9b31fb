// internal/controller/agent_controller.go
package controller

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/unclebandit/campaign-agent-backend/internal/model"
    "github.com/unclebandit/campaign-agent-backend/internal/service"
)

type AgentController struct {
    AgentService *service.AgentService
}

// TriggerSuggestions accepts a campaign request and enqueues a background
// run. The response is 202 before any of the actual work happens.
func (c *AgentController) TriggerSuggestions(w http.ResponseWriter, r *http.Request) {
    var body model.CampaignRequest
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    if err := body.Validate(); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    if err := c.AgentService.Trigger(body); err != nil {
        log.Println("⚠️ Failed to trigger campaign run:", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }

    log.Println("Campaign agent triggered successfully.")
    w.WriteHeader(http.StatusAccepted)
    w.Write([]byte("Request Accepted."))
}

// RetrieveSuggestions returns the newest stored suggestions for a company.
// Every failure collapses to a generic 500; callers cannot tell not-found
// from a storage error here.
func (c *AgentController) RetrieveSuggestions(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CompanyName string `json:"company_name"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        log.Println("⚠️ Error retrieving suggestions:", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }

    suggestions, err := c.AgentService.CurrentSuggestions(body.CompanyName)
    if err != nil {
        log.Println("⚠️ Error retrieving suggestions:", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(suggestions)
}

// GetStatus returns the status of the newest job for a company
func (c *AgentController) GetStatus(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CompanyName string `json:"company_name"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        log.Println("⚠️ Error retrieving company status:", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }

    status, err := c.AgentService.LatestStatus(body.CompanyName)
    if err != nil {
        log.Println("⚠️ Error retrieving company status:", err)
        http.Error(w, "Internal Server Error", http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]string{"status": status})
}
