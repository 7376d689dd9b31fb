package llm

import (
    "context"
    "encoding/json"
    "fmt"
    "strings"

    "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"

    "github.com/unclebandit/campaign-agent-backend/internal/model"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = "You are an expert consultant that helps companies achieve " +
    "their desired campaign goals by generating marketing campaign ideas based on " +
    "company profiles and the goal the company provides."

// campaignResponse is the JSON shape the model is asked to produce
type campaignResponse struct {
    CompanyName string   `json:"company_name"`
    Suggestions []string `json:"suggestions"`
}

// GeminiGenerator implements Generator using Google Gemini
type GeminiGenerator struct {
    client *genai.Client
    model  string
}

// NewGeminiGenerator creates a Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
    if apiKey == "" {
        return nil, fmt.Errorf("API key is required")
    }
    if modelName == "" {
        modelName = defaultModel
    }

    client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
    if err != nil {
        return nil, fmt.Errorf("failed to create Gemini client: %w", err)
    }

    return &GeminiGenerator{client: client, model: modelName}, nil
}

// Generate asks the model for campaign ideas. Any failure propagates to the
// caller unchanged; there are no retries here.
func (g *GeminiGenerator) Generate(ctx context.Context, profile *model.CompanyProfile, goal string) ([]string, error) {
    m := g.client.GenerativeModel(g.model)
    m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
    m.ResponseMIMEType = "application/json"

    resp, err := m.GenerateContent(ctx, genai.Text(BuildPrompt(profile, goal)))
    if err != nil {
        return nil, fmt.Errorf("failed to generate campaign ideas: %w", err)
    }

    text, err := extractTextFromResponse(resp)
    if err != nil {
        return nil, err
    }

    return ParseSuggestions(text)
}

// Close releases resources held by the client
func (g *GeminiGenerator) Close() error {
    if g.client != nil {
        return g.client.Close()
    }
    return nil
}

// BuildPrompt renders the profile and goal into the generation prompt
func BuildPrompt(profile *model.CompanyProfile, goal string) string {
    var b strings.Builder
    fmt.Fprintf(&b, "Generate campaign ideas for the following campaign goal: %s\n", goal)
    b.WriteString("Based on the following company profile:\n")
    fmt.Fprintf(&b, "Company Name: %s\n", profile.CompanyName)
    fmt.Fprintf(&b, "brand_voice: %s\n", profile.BrandVoice)
    fmt.Fprintf(&b, "target_audience: %s\n", profile.TargetAudience)
    fmt.Fprintf(&b, "product_category: %s\n", profile.ProductCategory)
    fmt.Fprintf(&b, "style_guide: %s\n", profile.StyleGuide)
    fmt.Fprintf(&b, "recent_campaign_metrics: %s\n", string(profile.RecentCampaignMetrics))
    b.WriteString(`Respond with JSON: {"company_name": string, "suggestions": [string]}`)
    return b.String()
}

// ParseSuggestions decodes the model's JSON reply into the suggestion list
func ParseSuggestions(text string) ([]string, error) {
    var parsed campaignResponse
    if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &parsed); err != nil {
        return nil, fmt.Errorf("failed to parse model response: %w", err)
    }
    if len(parsed.Suggestions) == 0 {
        return nil, fmt.Errorf("model returned no suggestions")
    }
    return parsed.Suggestions, nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
    if len(resp.Candidates) == 0 {
        return "", fmt.Errorf("no candidates in response")
    }

    candidate := resp.Candidates[0]
    if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
        return "", fmt.Errorf("no content in response")
    }

    var parts []string
    for _, part := range candidate.Content.Parts {
        if text, ok := part.(genai.Text); ok {
            parts = append(parts, string(text))
        }
    }

    if len(parts) == 0 {
        return "", fmt.Errorf("no text parts in response")
    }

    return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
    text = strings.TrimSpace(text)
    text = strings.TrimPrefix(text, "```json")
    text = strings.TrimPrefix(text, "```")
    text = strings.TrimSuffix(text, "```")
    return strings.TrimSpace(text)
}
