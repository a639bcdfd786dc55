package vision

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/shiftlens/schedule-scanner/internal/config"
)

// Client is the hosted multimodal model behind schedule processing: one
// call transcribes the schedule image, a second summarizes the result.
type Client interface {
	ExtractSchedule(ctx context.Context, image []byte, format string) (string, error)
	AnalyzeSchedule(ctx context.Context, scheduleJSON string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

// ExtractSchedule sends the schedule image with the extraction prompt and
// returns the model's raw text. The format is the bare image subtype
// ("jpeg", "png"), not a full MIME type.
func (g *GeminiClient) ExtractSchedule(ctx context.Context, image []byte, format string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(extractPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return flattenText(resp), nil
}

// AnalyzeSchedule asks the model for total hours and a natural-language
// summary of an already-extracted schedule.
func (g *GeminiClient) AnalyzeSchedule(ctx context.Context, scheduleJSON string) (string, error) {
	prompt := fmt.Sprintf(analyzePromptFormat, scheduleJSON)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return flattenText(resp), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func flattenText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
