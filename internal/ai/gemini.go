package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generator is the raw model transport behind Service.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateImage returns the first inline image of the answer.
	GenerateImage(ctx context.Context, prompt string) (data []byte, mimeType string, err error)
}

var errNoImage = errors.New("model returned no image")

// GeminiGenerator talks to the Gemini API.
type GeminiGenerator struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

func NewGeminiGenerator(ctx context.Context, apiKey, textModel, imageModel string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopK:        genai.Ptr[float32](40),
		TopP:        genai.Ptr[float32](0.95),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
		// Only the first candidate is considered.
		break
	}
	return nil, "", errNoImage
}
