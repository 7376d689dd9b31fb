package repository

import (
    "database/sql"
    "encoding/json"
    "time"

    appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
    "github.com/unclebandit/campaign-agent-backend/internal/model"
)

type SuggestionRepositoryInterface interface {
    // Save inserts a new row; prior rows for the same company are kept.
    // A zero `at` means time.Now() — the parameter exists for deterministic tests.
    Save(s *model.CampaignSuggestion, at time.Time) error
    // Latest returns the row with the maximum last_updated for the company.
    Latest(companyName string) (*model.CampaignSuggestion, error)
}

type SuggestionRepository struct {
    DB *sql.DB
}

func (r *SuggestionRepository) Save(s *model.CampaignSuggestion, at time.Time) error {
    if at.IsZero() {
        at = time.Now()
    }
    s.LastUpdated = at

    payload, err := json.Marshal(s.Suggestions)
    if err != nil {
        return err
    }

    query := `
        INSERT INTO campaign_suggestions (company_name, suggestions, last_updated)
        VALUES ($1, $2, $3)
        RETURNING id
    `
    return r.DB.QueryRow(query, s.CompanyName, payload, s.LastUpdated).Scan(&s.ID)
}

func (r *SuggestionRepository) Latest(companyName string) (*model.CampaignSuggestion, error) {
    query := `
        SELECT id, company_name, suggestions, last_updated
        FROM campaign_suggestions
        WHERE company_name = $1
        ORDER BY last_updated DESC
        LIMIT 1
    `
    var s model.CampaignSuggestion
    var payload []byte
    err := r.DB.QueryRow(query, companyName).Scan(&s.ID, &s.CompanyName, &payload, &s.LastUpdated)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewSuggestionNotFound(companyName)
        }
        return nil, err
    }
    if err := json.Unmarshal(payload, &s.Suggestions); err != nil {
        return nil, err
    }
    return &s, nil
}

var _ SuggestionRepositoryInterface = (*SuggestionRepository)(nil)
