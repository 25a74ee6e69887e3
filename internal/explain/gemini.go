// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

/*
gemini.go - Gemini generateContent API client

Implements the Explainer interface against Google's Generative Language API.
Two generation modes are supported:

  - batch: one generateContent call per recommendation set, asking the model
    for "Name: explanation" lines, which is the normal production mode
  - per_item: one call per recommended item, paced by a rate limiter to stay
    inside free-tier quotas

API Reference: https://ai.google.dev/api/generate-content
*/

package explain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/suggestio/internal/logging"
)

// Generation modes accepted by NewGeminiClient.
const (
	ModeBatch   = "batch"
	ModePerItem = "per_item"
)

// GeminiOptions configures a GeminiClient.
type GeminiOptions struct {
	// BaseURL is the API root, e.g.
	// https://generativelanguage.googleapis.com/v1beta
	BaseURL string

	// Model is the model name, e.g. gemini-pro-latest.
	Model string

	// APIKey authenticates requests.
	APIKey string

	// Mode selects batch or per_item generation. Defaults to batch.
	Mode string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// PerItemInterval spaces per_item requests. Ignored in batch mode.
	PerItemInterval time.Duration
}

// GeminiClient calls the Gemini generateContent endpoint to produce
// explanations. It is safe for concurrent use.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	mode       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// generateContent request/response wire types, trimmed to the fields used.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a client for the generateContent API.
func NewGeminiClient(opts GeminiOptions) *GeminiClient {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if opts.Mode == "" {
		opts.Mode = ModeBatch
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}

	var limiter *rate.Limiter
	if opts.Mode == ModePerItem {
		interval := opts.PerItemInterval
		if interval <= 0 {
			interval = 31 * time.Second
		}
		// First request passes immediately; subsequent ones are spaced by
		// the interval.
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	return &GeminiClient{
		baseURL: baseURL,
		model:   opts.Model,
		apiKey:  opts.APIKey,
		mode:    opts.Mode,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: limiter,
	}
}

// Explain implements Explainer.
func (c *GeminiClient) Explain(ctx context.Context, history, recommended []string) (map[string]string, error) {
	if len(recommended) == 0 {
		return nil, nil
	}
	if c.mode == ModePerItem {
		return c.explainPerItem(ctx, history, recommended)
	}
	return c.explainBatch(ctx, history, recommended)
}

// explainBatch asks for all explanations in one call and parses the
// "Name: explanation" lines out of the reply. Lines for unknown names and
// malformed lines are dropped; callers fill the gaps with Placeholder.
func (c *GeminiClient) explainBatch(ctx context.Context, history, recommended []string) (map[string]string, error) {
	text, err := c.generate(ctx, batchPrompt(history, recommended))
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(recommended))
	for _, name := range recommended {
		wanted[name] = struct{}{}
	}

	out := make(map[string]string, len(recommended))
	for _, line := range strings.Split(text, "\n") {
		name, expl, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), "*"))
		expl = strings.TrimSpace(expl)
		if expl == "" {
			continue
		}
		if _, ok := wanted[name]; ok {
			out[name] = expl
		}
	}

	logging.Debug().
		Int("requested", len(recommended)).
		Int("parsed", len(out)).
		Msg("batch explanation response parsed")

	return out, nil
}

// explainPerItem issues one call per item, paced by the limiter. The first
// failure aborts the remaining items; whatever was generated so far is
// returned with the error so callers can still use it.
func (c *GeminiClient) explainPerItem(ctx context.Context, history, recommended []string) (map[string]string, error) {
	out := make(map[string]string, len(recommended))
	for _, name := range recommended {
		if err := c.limiter.Wait(ctx); err != nil {
			return out, fmt.Errorf("rate limit wait: %w", err)
		}
		text, err := c.generate(ctx, itemPrompt(history, name))
		if err != nil {
			return out, err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			out[name] = text
		}
	}
	return out, nil
}

// generate performs one generateContent call and returns the text of the
// first candidate part.
func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return "", fmt.Errorf("gemini returned status %d (failed to read body)", resp.StatusCode)
		}
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response contained no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// batchPrompt builds the single-call prompt covering every recommended item.
func batchPrompt(history, recommended []string) string {
	var b strings.Builder
	b.WriteString("A shopper has viewed these products: ")
	b.WriteString(historyClause(history))
	b.WriteString(".\nFor each of the following recommended products, write one short, ")
	b.WriteString("friendly sentence starting with \"Because you liked\" that connects ")
	b.WriteString("it to their viewing history.\n")
	b.WriteString("Reply with exactly one line per product in the form ")
	b.WriteString("\"<product name>: <explanation>\" and nothing else.\n\nProducts:\n")
	for _, name := range recommended {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}

// itemPrompt builds the single-item prompt used in per_item mode.
func itemPrompt(history []string, name string) string {
	return fmt.Sprintf(
		"A shopper has viewed these products: %s.\n"+
			"Write one short, friendly sentence starting with \"Because you liked\" "+
			"explaining why they might enjoy %q. Reply with the sentence only.",
		historyClause(history), name)
}

func historyClause(history []string) string {
	if len(history) == 0 {
		return "nothing yet"
	}
	return strings.Join(history, ", ")
}
