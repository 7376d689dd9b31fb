// internal/model/company_profile.go
package model

import "encoding/json"

// CompanyProfile is seeded out of band and read-only for the agent.
type CompanyProfile struct {
    ID                    string          `db:"id" json:"id"`
    CompanyName           string          `db:"company_name" json:"company_name"`
    BrandVoice            string          `db:"brand_voice" json:"brand_voice"`
    TargetAudience        string          `db:"target_audience" json:"target_audience"`
    ProductCategory       string          `db:"product_category" json:"product_category"`
    StyleGuide            string          `db:"style_guide" json:"style_guide"`
    RecentCampaignMetrics json.RawMessage `db:"recent_campaign_metrics" json:"recent_campaign_metrics"`
}
