// internal/service/agent_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/unclebandit/campaign-agent-backend/internal/llm"
    "github.com/unclebandit/campaign-agent-backend/internal/model"
    "github.com/unclebandit/campaign-agent-backend/internal/notifier"
    "github.com/unclebandit/campaign-agent-backend/internal/queue"
    "github.com/unclebandit/campaign-agent-backend/internal/repository"
)

// AgentService composes profile lookup, suggestion generation, persistence
// and notification into one request-scoped workflow.
type AgentService struct {
    ProfileRepo    repository.ProfileRepositoryInterface
    SuggestionRepo repository.SuggestionRepositoryInterface
    JobRepo        repository.JobRepositoryInterface
    Generator      llm.Generator
    Notifier       notifier.Notifier
    Queue          queue.Queue
}

// Trigger accepts a request: it records a "working" job row and enqueues the
// run, then returns immediately. Job creation is not atomic with the run —
// a crash after this point leaves the job "working" with no recovery.
func (s *AgentService) Trigger(req model.CampaignRequest) error {
    norm := req.Normalized()

    if _, err := s.JobRepo.Create(norm.CompanyName); err != nil {
        return err
    }

    return s.Queue.Publish(queue.TopicCampaignRuns, norm)
}

// Orchestrate executes one end-to-end run: fetch profile, generate ideas,
// persist, mark the job completed, notify. The two persistence writes are
// sequential, not transactional. A false return from the notifier becomes a
// run-level error even though the data is already saved.
func (s *AgentService) Orchestrate(req model.CampaignRequest) error {
    norm := req.Normalized()
    log.Println("Orchestrating campaign for company:", norm.CompanyName)

    profile, err := s.ProfileRepo.GetByName(norm.CompanyName)
    if err != nil {
        // job stays "working"; nothing persisted for this run
        return err
    }

    suggestions, err := s.Generator.Generate(context.Background(), profile, norm.CampaignGoal)
    if err != nil {
        return fmt.Errorf("suggestion generation failed: %w", err)
    }

    suggestion := &model.CampaignSuggestion{
        CompanyName: norm.CompanyName,
        Suggestions: suggestions,
    }
    if err := s.SuggestionRepo.Save(suggestion, time.Time{}); err != nil {
        return err
    }

    if err := s.JobRepo.UpdateLatestStatus(norm.CompanyName, model.JobStatusCompleted); err != nil {
        return err
    }

    if !s.Notifier.Notify(norm.CompanyName, norm.Email) {
        return fmt.Errorf("failed to send email notification for %s", norm.CompanyName)
    }

    return nil
}

// CurrentSuggestions returns the newest suggestion row for the company
func (s *AgentService) CurrentSuggestions(companyName string) (*model.CampaignSuggestion, error) {
    return s.SuggestionRepo.Latest(normalize(companyName))
}

// LatestStatus returns the status of the newest job row for the company
func (s *AgentService) LatestStatus(companyName string) (string, error) {
    return s.JobRepo.LatestStatus(normalize(companyName))
}

// LatestJob returns the full newest job row for the company
func (s *AgentService) LatestJob(companyName string) (*model.Job, error) {
    return s.JobRepo.Latest(normalize(companyName))
}

func normalize(name string) string {
    return strings.ToLower(strings.TrimSpace(name))
}
