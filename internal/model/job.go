// internal/model/job.go
package model

import "time"

// Observed job statuses. Runs that abort before persistence leave the job
// "working" with no further transition.
const (
    JobStatusWorking   = "working"
    JobStatusCompleted = "completed"
)

type Job struct {
    ID          int        `db:"id" json:"id"`
    CompanyName string     `db:"company_name" json:"company_name"`
    Status      string     `db:"status" json:"status"` // working, completed
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
    ExpiresAt   time.Time  `db:"expires_at" json:"expires_at"`
}
