// Package ai provides the LLM-backed document features: summarization,
// question answering over a document's text, and comparison of two
// documents.
//
// The pipeline itself never depends on a language model; these features sit
// beside it. Assistant is the seam: Gemini implements it over the genai
// SDK, and Noop satisfies it with empty answers so the rest of the system
// runs without an API key.
package ai

import "context"

// Assistant answers questions about extracted document text.
type Assistant interface {
	// Summarize produces a short summary of the document text.
	Summarize(ctx context.Context, text string) (string, error)

	// Ask answers a free-form question using the document text as context.
	Ask(ctx context.Context, question, document string) (string, error)

	// Compare describes the substantive differences between two documents.
	Compare(ctx context.Context, firstName, firstText, secondName, secondText string) (string, error)
}

// Noop is an Assistant that returns empty answers. It stands in when no
// LLM provider is configured.
type Noop struct{}

func (Noop) Summarize(ctx context.Context, text string) (string, error) { return "", nil }

func (Noop) Ask(ctx context.Context, question, document string) (string, error) {
	return "", nil
}

func (Noop) Compare(ctx context.Context, firstName, firstText, secondName, secondText string) (string, error) {
	return "", nil
}
