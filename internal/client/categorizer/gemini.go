package categorizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

const systemInstruction = `You are a personal finance expert. Your task is to categorize bank accounts based on their name and description.

Here are some example categories: ["Savings", "Checking", "Credit Card", "Investment", "Loan", "Mortgage", "Other"]

Given the account information, determine the most appropriate category and provide a confidence score. The confidence score should be a number between 0 and 1.`

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"category": {
			Type:        genai.TypeString,
			Description: "The category of the bank account.",
		},
		"confidence": {
			Type:        genai.TypeNumber,
			Description: "A confidence score between 0 and 1 indicating the certainty of the categorization.",
		},
	},
	Required: []string{"category", "confidence"},
}

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Gemini categorizes accounts with a Gemini model constrained to a JSON
// response.
type Gemini struct {
	model    string
	timeout  time.Duration
	generate generateFunc
}

// NewGemini builds a client for the Gemini API. A zero timeout leaves the
// call bounded only by ctx.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{model: model, timeout: timeout, generate: client.Models.GenerateContent}, nil
}

func (g *Gemini) Categorize(ctx context.Context, in Input) (Result, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf("Account Name: %s\nAccount Description: %s", in.AccountName, in.AccountDescription)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema,
	}

	resp, err := g.generate(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return Result{}, fmt.Errorf("categorize %q: %w", in.AccountName, err)
	}
	return parseResult(resp.Text())
}

func parseResult(text string) (Result, error) {
	var r Result
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &r); err != nil {
		return Result{}, fmt.Errorf("decode categorization: %w", err)
	}
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return Result{}, errors.New("categorization returned no category")
	}
	r.Confidence = clamp(r.Confidence)
	return r, nil
}
