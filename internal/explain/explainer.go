// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package explain augments recommendation sets with one-sentence
// explanations generated by a language-model API.
//
// Explanation generation is best-effort: the API handler composes an
// Explainer chain (cache, circuit breaker, Gemini client) and substitutes
// Placeholder text for any item whose explanation is missing or whose
// generation failed. A failing or disabled explainer never fails a request.
package explain

import "context"

// Placeholder is the explanation used when generation is disabled, fails, or
// omits an item.
const Placeholder = "This would be a great addition to your collection!"

// Explainer generates per-item explanations for a recommendation set.
type Explainer interface {
	// Explain returns a map from recommended item name to a one-sentence
	// explanation grounded in the viewing history. Missing names are
	// allowed; callers fill them with Placeholder. history may be empty.
	Explain(ctx context.Context, history, recommended []string) (map[string]string, error)
}

// Apply resolves the final explanation per recommended name: the generated
// text when present and non-empty, Placeholder otherwise. generated may be
// nil (the disabled or failed case).
func Apply(generated map[string]string, recommended []string) map[string]string {
	out := make(map[string]string, len(recommended))
	for _, name := range recommended {
		if text, ok := generated[name]; ok && text != "" {
			out[name] = text
			continue
		}
		out[name] = Placeholder
	}
	return out
}

// Disabled is the no-op Explainer used when explanation generation is turned
// off. It returns no explanations, so every item falls back to Placeholder.
type Disabled struct{}

// Explain implements Explainer.
func (Disabled) Explain(context.Context, []string, []string) (map[string]string, error) {
	return nil, nil
}
