package repository

import (
    "database/sql"
    "encoding/json"

    appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
    "github.com/unclebandit/campaign-agent-backend/internal/model"
)

// ProfileRepositoryInterface defines the read-side methods used by the agent.
// Profiles are seeded out of band; the agent never writes them.
type ProfileRepositoryInterface interface {
    GetByName(companyName string) (*model.CompanyProfile, error)
}

// ProfileRepository is the concrete implementation
type ProfileRepository struct {
    DB *sql.DB
}

// GetByName fetches a profile by exact company name. Callers are expected
// to lower-case the name before calling; no normalization happens here.
func (r *ProfileRepository) GetByName(companyName string) (*model.CompanyProfile, error) {
    query := `
        SELECT id, company_name, brand_voice, target_audience, product_category, style_guide, recent_campaign_metrics
        FROM company_profiles
        WHERE company_name = $1
    `
    var p model.CompanyProfile
    var metrics []byte
    err := r.DB.QueryRow(query, companyName).Scan(
        &p.ID, &p.CompanyName, &p.BrandVoice, &p.TargetAudience,
        &p.ProductCategory, &p.StyleGuide, &metrics,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewProfileNotFound(companyName)
        }
        return nil, err
    }
    p.RecentCampaignMetrics = json.RawMessage(metrics)
    return &p, nil
}

// Exists checks whether a profile is already seeded for the company
func (r *ProfileRepository) Exists(companyName string) (bool, error) {
    var count int
    err := r.DB.QueryRow(`SELECT COUNT(*) FROM company_profiles WHERE company_name = $1`, companyName).Scan(&count)
    if err != nil {
        return false, err
    }
    return count > 0, nil
}

// Create inserts a seeded profile (used by cmd/seeder only)
func (r *ProfileRepository) Create(p *model.CompanyProfile) error {
    query := `
        INSERT INTO company_profiles (id, company_name, brand_voice, target_audience, product_category, style_guide, recent_campaign_metrics)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
    _, err := r.DB.Exec(query, p.ID, p.CompanyName, p.BrandVoice, p.TargetAudience,
        p.ProductCategory, p.StyleGuide, []byte(p.RecentCampaignMetrics))
    return err
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)
