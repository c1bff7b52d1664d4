package narrative

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Gemini generates narrative text through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Generate(ctx context.Context, promptTemplate string, vars map[string]string, history []string) (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", &GenerationError{Reason: "bad prompt template", Err: err}
	}

	data := make(map[string]string, len(vars)+1)
	for k, v := range vars {
		data[k] = v
	}
	data["AdventureHistory"] = strings.Join(history, "\n")

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &GenerationError{Reason: "rendering prompt", Err: err}
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return "", &GenerationError{Reason: "model call failed", Err: err}
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{Reason: "no content returned"}
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", &GenerationError{Reason: "unexpected response type"}
	}
	return strings.TrimSpace(string(text)), nil
}

var _ Generator = (*Gemini)(nil)
