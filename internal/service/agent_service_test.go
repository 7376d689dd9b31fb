package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
	"github.com/unclebandit/campaign-agent-backend/internal/model"
	"github.com/unclebandit/campaign-agent-backend/internal/service"
)

// Mock repositories

type MockProfileRepo struct {
	profiles map[string]*model.CompanyProfile
}

func (m *MockProfileRepo) GetByName(companyName string) (*model.CompanyProfile, error) {
	if p, ok := m.profiles[companyName]; ok {
		return p, nil
	}
	return nil, appErrors.NewProfileNotFound(companyName)
}

type MockSuggestionRepo struct {
	saved []*model.CampaignSuggestion
}

func (m *MockSuggestionRepo) Save(s *model.CampaignSuggestion, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	s.LastUpdated = at
	saved := *s
	m.saved = append(m.saved, &saved)
	return nil
}

func (m *MockSuggestionRepo) Latest(companyName string) (*model.CampaignSuggestion, error) {
	var latest *model.CampaignSuggestion
	for _, s := range m.saved {
		if s.CompanyName != companyName {
			continue
		}
		if latest == nil || s.LastUpdated.After(latest.LastUpdated) {
			latest = s
		}
	}
	if latest == nil {
		return nil, appErrors.NewSuggestionNotFound(companyName)
	}
	return latest, nil
}

type MockJobRepo struct {
	jobs   []*model.Job
	nextID int
}

func (m *MockJobRepo) Create(companyName string) (int, error) {
	m.nextID++
	now := time.Now()
	m.jobs = append(m.jobs, &model.Job{
		ID:          m.nextID,
		CompanyName: companyName,
		Status:      model.JobStatusWorking,
		CreatedAt:   now,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
	})
	return m.nextID, nil
}

func (m *MockJobRepo) latest(companyName string) *model.Job {
	var latest *model.Job
	for _, j := range m.jobs {
		if j.CompanyName != companyName {
			continue
		}
		if latest == nil || j.ID > latest.ID {
			latest = j
		}
	}
	return latest
}

func (m *MockJobRepo) UpdateLatestStatus(companyName, status string) error {
	if j := m.latest(companyName); j != nil {
		now := time.Now()
		j.Status = status
		j.UpdatedAt = &now
	}
	return nil // silent no-op when no job exists
}

func (m *MockJobRepo) LatestStatus(companyName string) (string, error) {
	if j := m.latest(companyName); j != nil {
		return j.Status, nil
	}
	return "", appErrors.NewJobNotFound(companyName)
}

func (m *MockJobRepo) Latest(companyName string) (*model.Job, error) {
	if j := m.latest(companyName); j != nil {
		return j, nil
	}
	return nil, appErrors.NewJobNotFound(companyName)
}

type MockGenerator struct {
	suggestions []string
	err         error
	gotProfile  *model.CompanyProfile
	gotGoal     string
}

func (m *MockGenerator) Generate(ctx context.Context, profile *model.CompanyProfile, goal string) ([]string, error) {
	m.gotProfile = profile
	m.gotGoal = goal
	if m.err != nil {
		return nil, m.err
	}
	return m.suggestions, nil
}

type MockNotifier struct {
	ok         bool
	called     bool
	gotCompany string
	gotEmail   string
}

func (m *MockNotifier) Notify(companyName, recipientEmail string) bool {
	m.called = true
	m.gotCompany = companyName
	m.gotEmail = recipientEmail
	return m.ok
}

type MockQueue struct {
	published []any
}

func (m *MockQueue) Publish(topic string, payload any) error {
	m.published = append(m.published, payload)
	return nil
}

func (m *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func acmeProfile() *model.CompanyProfile {
	return &model.CompanyProfile{
		ID:              "11111111-1111-1111-1111-111111111111",
		CompanyName:     "acme",
		BrandVoice:      "bold",
		TargetAudience:  "builders",
		ProductCategory: "tools",
		StyleGuide:      "short copy",
	}
}

func newAgent(profiles *MockProfileRepo, suggestions *MockSuggestionRepo, jobs *MockJobRepo, gen *MockGenerator, n *MockNotifier, q *MockQueue) *service.AgentService {
	return &service.AgentService{
		ProfileRepo:    profiles,
		SuggestionRepo: suggestions,
		JobRepo:        jobs,
		Generator:      gen,
		Notifier:       n,
		Queue:          q,
	}
}

func TestTriggerCreatesJobAndPublishes(t *testing.T) {
	jobs := &MockJobRepo{}
	q := &MockQueue{}
	svc := newAgent(&MockProfileRepo{}, &MockSuggestionRepo{}, jobs, &MockGenerator{}, &MockNotifier{ok: true}, q)

	err := svc.Trigger(model.CampaignRequest{
		CompanyName:  "Acme",
		CampaignGoal: "launch",
		Email:        "User@X.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(jobs.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs.jobs))
	}
	if jobs.jobs[0].CompanyName != "acme" {
		t.Errorf("expected job for acme, got %s", jobs.jobs[0].CompanyName)
	}
	if jobs.jobs[0].Status != "working" {
		t.Errorf("expected working status, got %s", jobs.jobs[0].Status)
	}

	if len(q.published) != 1 {
		t.Fatalf("expected 1 published run, got %d", len(q.published))
	}
	req, ok := q.published[0].(model.CampaignRequest)
	if !ok {
		t.Fatalf("expected model.CampaignRequest payload, got %T", q.published[0])
	}
	if req.CompanyName != "acme" || req.Email != "user@x.com" {
		t.Errorf("expected normalized payload, got %+v", req)
	}
}

func TestOrchestrateSuccess(t *testing.T) {
	profiles := &MockProfileRepo{profiles: map[string]*model.CompanyProfile{"acme": acmeProfile()}}
	suggestions := &MockSuggestionRepo{}
	jobs := &MockJobRepo{}
	jobs.Create("acme")
	gen := &MockGenerator{suggestions: []string{"idea A", "idea B"}}
	n := &MockNotifier{ok: true}

	svc := newAgent(profiles, suggestions, jobs, gen, n, &MockQueue{})

	err := svc.Orchestrate(model.CampaignRequest{
		CompanyName:  "Acme",
		CampaignGoal: "launch",
		Email:        "User@X.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.gotGoal != "launch" {
		t.Errorf("expected goal launch, got %s", gen.gotGoal)
	}
	if gen.gotProfile == nil || gen.gotProfile.CompanyName != "acme" {
		t.Errorf("generator did not receive the acme profile")
	}

	saved, err := suggestions.Latest("acme")
	if err != nil {
		t.Fatalf("expected saved suggestion: %v", err)
	}
	if len(saved.Suggestions) != 2 || saved.Suggestions[0] != "idea A" || saved.Suggestions[1] != "idea B" {
		t.Errorf("unexpected suggestions: %v", saved.Suggestions)
	}

	status, err := jobs.LatestStatus("acme")
	if err != nil {
		t.Fatalf("expected job status: %v", err)
	}
	if status != "completed" {
		t.Errorf("expected completed, got %s", status)
	}

	if !n.called {
		t.Fatal("notifier was not called")
	}
	if n.gotCompany != "acme" || n.gotEmail != "user@x.com" {
		t.Errorf("notifier got (%s, %s), want (acme, user@x.com)", n.gotCompany, n.gotEmail)
	}
}

func TestOrchestrateNotifierFailureKeepsPersistedState(t *testing.T) {
	profiles := &MockProfileRepo{profiles: map[string]*model.CompanyProfile{"acme": acmeProfile()}}
	suggestions := &MockSuggestionRepo{}
	jobs := &MockJobRepo{}
	jobs.Create("acme")
	n := &MockNotifier{ok: false}

	svc := newAgent(profiles, suggestions, jobs, &MockGenerator{suggestions: []string{"idea A"}}, n, &MockQueue{})

	err := svc.Orchestrate(model.CampaignRequest{
		CompanyName:  "acme",
		CampaignGoal: "launch",
		Email:        "user@x.com",
	})
	if err == nil {
		t.Fatal("expected an error when notification fails")
	}

	// data is not rolled back
	if _, err := suggestions.Latest("acme"); err != nil {
		t.Errorf("suggestion should still be saved: %v", err)
	}
	status, _ := jobs.LatestStatus("acme")
	if status != "completed" {
		t.Errorf("job should still be completed, got %s", status)
	}
}

func TestOrchestrateProfileNotFound(t *testing.T) {
	suggestions := &MockSuggestionRepo{}
	jobs := &MockJobRepo{}
	jobs.Create("ghost")
	n := &MockNotifier{ok: true}

	svc := newAgent(&MockProfileRepo{}, suggestions, jobs, &MockGenerator{suggestions: []string{"x"}}, n, &MockQueue{})

	err := svc.Orchestrate(model.CampaignRequest{
		CompanyName:  "Ghost",
		CampaignGoal: "launch",
		Email:        "user@x.com",
	})
	if err == nil {
		t.Fatal("expected profile not found error")
	}
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected a NotFound error, got %v", err)
	}

	if len(suggestions.saved) != 0 {
		t.Errorf("no suggestion should be saved, got %d", len(suggestions.saved))
	}
	status, _ := jobs.LatestStatus("ghost")
	if status != "working" {
		t.Errorf("job should remain working, got %s", status)
	}
	if n.called {
		t.Error("notifier must not be called on aborted runs")
	}
}

func TestOrchestrateGenerationFailure(t *testing.T) {
	profiles := &MockProfileRepo{profiles: map[string]*model.CompanyProfile{"acme": acmeProfile()}}
	suggestions := &MockSuggestionRepo{}
	jobs := &MockJobRepo{}
	jobs.Create("acme")

	gen := &MockGenerator{err: fmt.Errorf("model unavailable")}
	svc := newAgent(profiles, suggestions, jobs, gen, &MockNotifier{ok: true}, &MockQueue{})

	err := svc.Orchestrate(model.CampaignRequest{
		CompanyName:  "acme",
		CampaignGoal: "launch",
		Email:        "user@x.com",
	})
	if err == nil {
		t.Fatal("expected generation error to propagate")
	}

	if len(suggestions.saved) != 0 {
		t.Errorf("nothing should be persisted, got %d suggestions", len(suggestions.saved))
	}
	status, _ := jobs.LatestStatus("acme")
	if status != "working" {
		t.Errorf("job should remain working, got %s", status)
	}
}

func TestCurrentSuggestionsPicksNewestRow(t *testing.T) {
	suggestions := &MockSuggestionRepo{}
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	suggestions.Save(&model.CampaignSuggestion{CompanyName: "acme", Suggestions: []string{"old"}}, t1)
	suggestions.Save(&model.CampaignSuggestion{CompanyName: "acme", Suggestions: []string{"new"}}, t2)

	svc := newAgent(&MockProfileRepo{}, suggestions, &MockJobRepo{}, &MockGenerator{}, &MockNotifier{ok: true}, &MockQueue{})

	// repeated identical queries return the same newest row
	for i := 0; i < 3; i++ {
		got, err := svc.CurrentSuggestions("ACME")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Suggestions[0] != "new" {
			t.Errorf("expected the t2 row, got %v", got.Suggestions)
		}
	}
}

func TestCurrentSuggestionsNotFound(t *testing.T) {
	svc := newAgent(&MockProfileRepo{}, &MockSuggestionRepo{}, &MockJobRepo{}, &MockGenerator{}, &MockNotifier{ok: true}, &MockQueue{})

	_, err := svc.CurrentSuggestions("nobody")
	if err == nil {
		t.Fatal("expected not found error, not an empty result")
	}
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected a NotFound error, got %v", err)
	}
}

func TestLatestStatusAfterTrigger(t *testing.T) {
	jobs := &MockJobRepo{}
	svc := newAgent(&MockProfileRepo{}, &MockSuggestionRepo{}, jobs, &MockGenerator{}, &MockNotifier{ok: true}, &MockQueue{})

	if err := svc.Trigger(model.CampaignRequest{CompanyName: "Acme", CampaignGoal: "launch", Email: "u@x.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := svc.LatestStatus("Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "working" {
		t.Errorf("expected working before the run executes, got %s", status)
	}
}
