// internal/model/campaign_suggestion.go
package model

import "time"

// CampaignSuggestion rows are append-only; the current one for a company
// is the row with the max last_updated.
type CampaignSuggestion struct {
    ID          int       `db:"id" json:"id"`
    CompanyName string    `db:"company_name" json:"company_name"`
    Suggestions []string  `db:"suggestions" json:"suggestions"`
    LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}
