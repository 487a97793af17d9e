package ai

import (
	"context"
	"errors"
	"unicode/utf8"

	genai "google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// maxDocumentChars caps how much document text is sent with one prompt.
// Longer documents are clipped from the front; the table-bearing pages of
// the statements this serves sit early in the text.
const maxDocumentChars = 16000

// Gemini is an Assistant backed by Google's Gemini models.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini assistant. The API key is required; the model
// name falls back to DefaultModel when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) prompt(ctx context.Context, text string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// Summarize produces a concise summary of the document text.
func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	prompt := "Summarize this document in at most five sentences. Mention any tabular data it contains.\n\n" +
		clip(text, maxDocumentChars)
	return g.prompt(ctx, prompt)
}

// Ask answers a question using the document text as the only context.
func (g *Gemini) Ask(ctx context.Context, question, document string) (string, error) {
	prompt := "Answer the question using only the document below. " +
		"If the document does not contain the answer, say so.\n\nQuestion: " + question +
		"\n\nDocument:\n" + clip(document, maxDocumentChars)
	return g.prompt(ctx, prompt)
}

// Compare describes the substantive differences between two documents.
func (g *Gemini) Compare(ctx context.Context, firstName, firstText, secondName, secondText string) (string, error) {
	half := maxDocumentChars / 2
	prompt := "Compare these two documents. List the substantive differences, " +
		"especially in any tabular data, as short bullet points.\n\n" +
		"Document A (" + firstName + "):\n" + clip(firstText, half) +
		"\n\nDocument B (" + secondName + "):\n" + clip(secondText, half)
	return g.prompt(ctx, prompt)
}

// clip truncates s to at most n bytes on a rune boundary.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
