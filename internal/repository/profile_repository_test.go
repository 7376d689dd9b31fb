package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	appErrors "github.com/unclebandit/campaign-agent-backend/internal/errors"
)

func TestProfileRepositoryGetByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &ProfileRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("FROM company_profiles")).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "company_name", "brand_voice", "target_audience",
			"product_category", "style_guide", "recent_campaign_metrics",
		}).AddRow("u-1", "acme", "bold", "builders", "tools", "short copy", []byte(`{"open_rate":0.31}`)))

	p, err := repo.GetByName("acme")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if p.CompanyName != "acme" || p.BrandVoice != "bold" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if string(p.RecentCampaignMetrics) != `{"open_rate":0.31}` {
		t.Errorf("unexpected metrics: %s", p.RecentCampaignMetrics)
	}
}

func TestProfileRepositoryGetByNameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &ProfileRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("FROM company_profiles")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "company_name", "brand_voice", "target_audience",
			"product_category", "style_guide", "recent_campaign_metrics",
		}))

	_, err = repo.GetByName("ghost")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected NotFound sentinel, got %v", err)
	}
}

func TestProfileRepositoryExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &ProfileRepository{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM company_profiles")).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists("acme")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected acme to exist")
	}
}
