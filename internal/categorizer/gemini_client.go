package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient implements AIClient with the Google Gemini API. The API client is
// created on first use.
type GeminiClient struct {
	apiKey    string
	modelName string
	timeout   time.Duration
	logger    logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient returns a client for modelName. A zero timeout means 30 seconds.
func NewGeminiClient(apiKey, modelName string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{apiKey: apiKey, modelName: modelName, timeout: timeout, logger: logger}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.model != nil {
		return nil
	}
	if c.apiKey == "" {
		return errors.New("no Gemini API key configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	c.model.SetTemperature(0)
	return nil
}

// Suggest asks the model to pick one of labels for rec.
func (c *GeminiClient) Suggest(ctx context.Context, rec models.Record, labels []models.Label) (models.Label, error) {
	if len(labels) == 0 {
		return models.Label{}, errors.New("no labels to choose from")
	}
	if err := c.ensureClient(ctx); err != nil {
		return models.Label{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(rec, labels)))
	if err != nil {
		return models.Label{}, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Label{}, errors.New("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	label := extractLabelFromResponse(text)
	c.logger.Debug("Gemini suggested label",
		logging.Field{Key: logging.FieldCategory, Value: label.Category},
		logging.Field{Key: logging.FieldClass, Value: label.Class})
	return label, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func buildPrompt(rec models.Record, labels []models.Label) string {
	var options strings.Builder
	for _, l := range labels {
		fmt.Fprintf(&options, "- %s / %s\n", l.Category, l.Class)
	}
	return fmt.Sprintf(`Categorize the following bank transaction.
Type: %s
Text: %s
Amount: %s
Date: %s

Choose exactly one of these category / class pairs:
%s
Respond in this format:
Category: [category]
Class: [class]`,
		rec.Type, rec.Text, rec.Net().StringFixed(2), rec.AccountingDate.Format("2006-01-02"), options.String())
}

// extractLabelFromResponse reads the "Category:" and "Class:" lines of a reply.
func extractLabelFromResponse(response string) models.Label {
	var label models.Label
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Category:"):
			label.Category = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		case strings.HasPrefix(line, "Class:"):
			label.Class = strings.TrimSpace(strings.TrimPrefix(line, "Class:"))
		}
	}
	return label
}
