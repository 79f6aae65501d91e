package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront-backend/internal/vision"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

const analysisPrompt = `Describe the menswear outfit in this image as JSON with keys:
style (one word), colors (array), patterns (array), garments (array),
occasion (one word), formality (integer 1-10), marketTier (budget, mid-range or premium).
Respond with JSON only.`

// Client implements vision.Client using an OpenAI-compatible multimodal
// chat completions endpoint.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a vision client. Both the key and the model are
// required.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("VISION_MODEL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("VISION_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
	ResponseFormat responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Analyze sends the image data URL plus the fixed instruction prompt and
// parses the structured description out of the reply.
func (c *Client) Analyze(ctx context.Context, imageDataURL string) (vision.Analysis, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: analysisPrompt},
					{Type: "image_url", ImageURL: &imageURL{URL: imageDataURL}},
				},
			},
		},
		MaxTokens:      500,
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return vision.Analysis{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return vision.Analysis{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return vision.Analysis{}, fmt.Errorf("vision request timeout: %w", err)
		}
		return vision.Analysis{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return vision.Analysis{}, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return vision.Analysis{}, fmt.Errorf("vision provider unauthorized: %w", vision.ErrNotConfigured)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return vision.Analysis{}, fmt.Errorf("vision response parse: %w", err)
	}
	if parsed.Error != nil {
		return vision.Analysis{}, fmt.Errorf("vision error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return vision.Analysis{}, fmt.Errorf("vision response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return vision.Analysis{}, fmt.Errorf("vision response empty content")
	}
	return vision.ParseAnalysis(content), nil
}
