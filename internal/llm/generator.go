// Package llm wraps the generative model that turns a company profile and a
// campaign goal into a list of campaign ideas.
package llm

import (
    "context"

    "github.com/unclebandit/campaign-agent-backend/internal/model"
)

// Generator is an abstraction over the LLM provider so the agent can be
// tested without network calls.
type Generator interface {
    Generate(ctx context.Context, profile *model.CompanyProfile, goal string) ([]string, error)
}
