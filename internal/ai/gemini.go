package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiProvider calls the structured-generation endpoint with an explicit
// response schema, so the model output needs no fence stripping.
type geminiProvider struct {
	cfg     Config
	client  *http.Client
	baseURL string // test override; empty means geminiBaseURL
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction geminiContent   `json:"systemInstruction"`
	GenerationConfig  struct {
		ResponseMimeType string       `json:"responseMimeType"`
		ResponseSchema   geminiSchema `json:"responseSchema"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func taskSchema() geminiSchema {
	return geminiSchema{
		Type: "OBJECT",
		Properties: map[string]geminiSchema{
			"title":    {Type: "STRING"},
			"category": {Type: "STRING"},
			"priority": {Type: "INTEGER"},
			"deadline": {Type: "STRING"},
			"note":     {Type: "STRING"},
		},
		Required: []string{"title", "priority"},
	}
}

func (p *geminiProvider) generate(ctx context.Context, text string, now time.Time) ([]byte, error) {
	req := geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: text}}, Role: "user"}},
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt(now)}}},
	}
	req.GenerationConfig.ResponseMimeType = "application/json"
	req.GenerationConfig.ResponseSchema = taskSchema()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ai: encode request: %w", err)
	}

	base := p.baseURL
	if base == "" {
		base = geminiBaseURL
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(base, "/"), p.cfg.Model, url.QueryEscape(p.cfg.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ai: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ai: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai: provider error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("ai: response contains no content")
	}
	out := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if out == "" {
		return nil, fmt.Errorf("ai: response contains no content")
	}
	return []byte(out), nil
}
