package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shiren23/focusflow/internal/model"
)

// DefaultCategory is assigned when the provider response names no category.
const DefaultCategory = "杂项"

// Draft holds the task fields extracted from free text. Deadline is carried
// as the raw provider string; it is not validated here.
type Draft struct {
	Title    string
	Category string
	Priority model.Priority
	Deadline string
	Note     string
}

// Config selects and authenticates the provider. It is taken verbatim from
// the user's settings.
type Config struct {
	Provider model.AIProvider
	APIKey   string
	BaseURL  string
	Model    string
}

func ConfigFromSettings(s model.Settings) Config {
	return Config{
		Provider: s.AIProvider,
		APIKey:   s.AIAPIKey,
		BaseURL:  s.AIBaseURL,
		Model:    s.AIModel,
	}
}

// provider turns free text into the raw JSON object the model produced.
type provider interface {
	generate(ctx context.Context, text string, now time.Time) ([]byte, error)
}

// Adapter is the multi-provider task parser. The zero value is not usable;
// construct with New.
type Adapter struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

func New(cfg Config) *Adapter {
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{},
		now:    time.Now,
	}
}

// Parse extracts task fields from text. A missing API key returns (nil, nil):
// that is a configuration gap for the caller to surface, not an error.
// Transport failures and unusable responses return a non-nil error and no
// draft. There are no retries.
func (a *Adapter) Parse(ctx context.Context, text string) (*Draft, error) {
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		return nil, nil
	}

	var p provider
	switch a.cfg.Provider {
	case model.ProviderGemini:
		p = &geminiProvider{cfg: a.cfg, client: a.client}
	case model.ProviderOpenAI, model.ProviderCustom:
		p = &openAIProvider{cfg: a.cfg, client: a.client}
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", a.cfg.Provider)
	}

	raw, err := p.generate(ctx, text, a.now())
	if err != nil {
		return nil, err
	}
	return mapDraft(raw)
}

type parsedResult struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Priority model.Priority  `json:"priority"`
	Deadline json.RawMessage `json:"deadline"`
	Note     string          `json:"note"`
}

// mapDraft applies the fallback defaults the caller relies on: missing
// category becomes DefaultCategory, missing priority becomes 2, missing note
// becomes empty, deadline passes through unchanged.
func mapDraft(raw []byte) (*Draft, error) {
	var result parsedResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("ai: unparsable model response: %w", err)
	}
	draft := &Draft{
		Title:    result.Title,
		Category: result.Category,
		Priority: result.Priority,
		Note:     result.Note,
	}
	if draft.Category == "" {
		draft.Category = DefaultCategory
	}
	if draft.Priority == 0 {
		draft.Priority = model.PriorityImportant
	}
	if len(result.Deadline) > 0 && string(result.Deadline) != "null" {
		var deadline string
		if err := json.Unmarshal(result.Deadline, &deadline); err == nil {
			draft.Deadline = deadline
		}
	}
	return draft, nil
}

// stripFences removes markdown code fences some models wrap around JSON
// despite instructions.
func stripFences(content string) string {
	out := strings.TrimSpace(content)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
