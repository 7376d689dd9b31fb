// internal/model/campaign_request.go
package model

import (
    "fmt"
    "strings"
)

// CampaignRequest is the payload accepted by the trigger endpoint and
// carried through the queue to the orchestrator.
type CampaignRequest struct {
    CompanyName  string `json:"company_name"`
    CampaignGoal string `json:"campaign_goal"`
    Email        string `json:"email"`
}

// Validate checks all required fields are present
func (r *CampaignRequest) Validate() error {
    if strings.TrimSpace(r.CompanyName) == "" ||
        strings.TrimSpace(r.CampaignGoal) == "" ||
        strings.TrimSpace(r.Email) == "" {
        return fmt.Errorf("missing required fields: company_name, campaign_goal, email")
    }
    return nil
}

// Normalized returns a copy with company name and email lower-cased,
// since both are used as lookup/storage keys.
func (r *CampaignRequest) Normalized() CampaignRequest {
    return CampaignRequest{
        CompanyName:  strings.ToLower(strings.TrimSpace(r.CompanyName)),
        CampaignGoal: r.CampaignGoal,
        Email:        strings.ToLower(strings.TrimSpace(r.Email)),
    }
}
