// Package aiclient is a thin client for the Gemini generateContent
// REST API. It backs the admin suggestion endpoints and is always
// best-effort: callers treat any error as "no suggestion", never as a
// reason to fail the operation the suggestion was assisting.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rajit909/portfolio-api/config"
	"go.uber.org/zap"
)

var ErrDisabled = errors.New("aiclient: suggestion service is not configured")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	imageModel string
	logger     *zap.Logger
}

func New(cfg config.AIConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = model
	}
	apiKey := cfg.APIKey
	if !cfg.Enabled {
		apiKey = ""
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		imageModel: imageModel,
		logger:     zap.L().With(zap.String("component", "aiclient")),
	}
}

// Enabled reports whether the client is usable: the feature flag was
// on and an API key was configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a prompt and returns the concatenated text parts
// of the first candidate.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.model, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	var out string
	for _, p := range resp.Candidates[0].Content.Parts {
		out += p.Text
	}
	if out == "" {
		return "", fmt.Errorf("aiclient: empty text response")
	}
	return out, nil
}

// GenerateImage sends a prompt to the image-capable model and returns
// the result as a data URI, matching what the admin forms store.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	})
	if err != nil {
		return "", err
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
		}
	}
	return "", fmt.Errorf("aiclient: response contained no image data")
}

func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("aiclient: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("aiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Generate request failed", zap.String("model", model), zap.Error(err))
		return nil, fmt.Errorf("aiclient: request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("aiclient: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("aiclient: decode response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		msg := res.Status
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		c.logger.Warn("Generate returned error",
			zap.String("model", model),
			zap.Int("status", res.StatusCode),
			zap.String("message", msg))
		return nil, fmt.Errorf("aiclient: api error: %s", msg)
	}
	if len(parsed.Candidates) == 0 {
		return nil, fmt.Errorf("aiclient: no candidates in response")
	}
	return &parsed, nil
}
