package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoImage is returned when the model responds successfully but no
// candidate part carries usable image data.
var ErrNoImage = errors.New("response contained no image data")

// Image is one generated image: raw bytes plus the reported MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Client is the image-generation capability. A rejected call, a timed-out
// call, and a success with no image part are all surfaced as errors; callers
// treat them identically.
type Client interface {
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}

type geminiClient struct {
	client      *genai.Client
	model       string
	aspectRatio string
}

func NewClient(ctx context.Context, apiKey, model, aspectRatio string) (Client, error) {

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{client: client, model: model, aspectRatio: aspectRatio}, nil
}

// GenerateImage implements Client. The first inline-data part of the first
// candidate is the usable image; everything else in the response is ignored.
func (g *geminiClient) GenerateImage(ctx context.Context, prompt string) (*Image, error) {

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: g.aspectRatio,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoImage
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &Image{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}

	return nil, ErrNoImage
}
