package repository

import (
    "database/sql"
    "time"

    appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
    "github.com/unclebandit/campaign-agent-backend/internal/model"
)

// JobRetention is the advisory TTL stamped on each job row. No sweeper
// enforces it; expires_at is metadata only.
const JobRetention = 7 * 24 * time.Hour

type JobRepositoryInterface interface {
    Create(companyName string) (int, error)
    UpdateLatestStatus(companyName, status string) error
    LatestStatus(companyName string) (string, error)
    Latest(companyName string) (*model.Job, error)
}

type JobRepository struct {
    DB *sql.DB
}

// Create inserts a new "working" job row. No uniqueness constraint —
// concurrent jobs for the same company coexist and reads pick the newest.
func (r *JobRepository) Create(companyName string) (int, error) {
    now := time.Now()
    query := `
        INSERT INTO job_queue (company_name, status, created_at, expires_at)
        VALUES ($1, 'working', $2, $3)
        RETURNING id
    `
    var id int
    err := r.DB.QueryRow(query, companyName, now, now.Add(JobRetention)).Scan(&id)
    if err != nil {
        return 0, err
    }
    return id, nil
}

// UpdateLatestStatus updates the most-recently-created job for the company.
// Silent no-op when the company has no jobs — callers must not rely on this
// call to confirm a job exists.
func (r *JobRepository) UpdateLatestStatus(companyName, status string) error {
    query := `
        UPDATE job_queue SET status=$1, updated_at=NOW()
        WHERE id = (
            SELECT id FROM job_queue WHERE company_name=$2 ORDER BY created_at DESC LIMIT 1
        )
    `
    _, err := r.DB.Exec(query, status, companyName)
    return err
}

// LatestStatus returns the status of the newest job row for the company
func (r *JobRepository) LatestStatus(companyName string) (string, error) {
    query := `SELECT status FROM job_queue WHERE company_name=$1 ORDER BY created_at DESC LIMIT 1`
    var status string
    err := r.DB.QueryRow(query, companyName).Scan(&status)
    if err != nil {
        if err == sql.ErrNoRows {
            return "", appErrors.NewJobNotFound(companyName)
        }
        return "", err
    }
    return status, nil
}

// Latest fetches the full newest job row for the company
func (r *JobRepository) Latest(companyName string) (*model.Job, error) {
    query := `
        SELECT id, company_name, status, created_at, updated_at, expires_at
        FROM job_queue
        WHERE company_name=$1
        ORDER BY created_at DESC
        LIMIT 1
    `
    var j model.Job
    err := r.DB.QueryRow(query, companyName).Scan(
        &j.ID, &j.CompanyName, &j.Status, &j.CreatedAt, &j.UpdatedAt, &j.ExpiresAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewJobNotFound(companyName)
        }
        return nil, err
    }
    return &j, nil
}

var _ JobRepositoryInterface = (*JobRepository)(nil)
