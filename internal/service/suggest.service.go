package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rajit909/portfolio-api/internal/aiclient"
	"go.uber.org/zap"
)

// SuggestService backs the admin-panel assist endpoints. Every method
// is best-effort: failures surface as errors the handlers translate to
// a non-fatal "suggestion unavailable" response.
type SuggestService struct {
	client *aiclient.Client
	logger *zap.Logger
}

func NewSuggestService(client *aiclient.Client) *SuggestService {
	return &SuggestService{
		client: client,
		logger: zap.L().With(zap.String("service", "suggest")),
	}
}

func (s *SuggestService) Enabled() bool {
	return s.client != nil && s.client.Enabled()
}

// SuggestTags proposes 3 to 5 tags for the given post content.
func (s *SuggestService) SuggestTags(ctx context.Context, postContent string) ([]string, error) {
	if !s.Enabled() {
		return nil, aiclient.ErrDisabled
	}
	prompt := fmt.Sprintf(
		"You are an expert blog editor. Based on the content of the blog post below, "+
			"suggest between 3 and 5 relevant tags. Respond with ONLY a JSON array of "+
			"lowercase strings, no markdown fences.\n\nPost content:\n%s", postContent)

	raw, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	tags, err := parseTagArray(raw)
	if err != nil {
		s.logger.Warn("Unparseable tag suggestion", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

// SuggestContent drafts HTML blog content for a topic, in the format
// the admin editor stores.
func (s *SuggestService) SuggestContent(ctx context.Context, topic string) (string, error) {
	if !s.Enabled() {
		return "", aiclient.ErrDisabled
	}
	prompt := fmt.Sprintf(
		"You are a professional technical writer. Write an engaging blog post about %q. "+
			"Respond with the post body as clean HTML using only <p>, <h2>, <h3>, <ul>, "+
			"<li>, <strong> and <em> tags. Do not include a title heading and do not wrap "+
			"the output in markdown fences.", topic)

	html, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return stripCodeFence(html), nil
}

// GenerateImage produces a cover image for the prompt as a data URI.
func (s *SuggestService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !s.Enabled() {
		return "", aiclient.ErrDisabled
	}
	return s.client.GenerateImage(ctx,
		fmt.Sprintf("Generate a clean, modern blog cover image for: %s", prompt))
}

// GenerateProjectDescription writes a short portfolio blurb from a
// project title and its technology list.
func (s *SuggestService) GenerateProjectDescription(ctx context.Context, title, technologies string) (string, error) {
	if !s.Enabled() {
		return "", aiclient.ErrDisabled
	}
	prompt := fmt.Sprintf(
		"Write a concise, compelling one-paragraph portfolio description (2 to 3 sentences) "+
			"for a software project titled %q built with %s. Respond with plain text only.",
		title, technologies)

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseTagArray tolerates models that wrap JSON in markdown fences.
func parseTagArray(raw string) ([]string, error) {
	cleaned := stripCodeFence(raw)

	var tags []string
	if err := json.Unmarshal([]byte(cleaned), &tags); err != nil {
		return nil, fmt.Errorf("parse tag suggestion: %w", err)
	}

	out := []string{}
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(strings.ToLower(tag)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse tag suggestion: empty array")
	}
	return out, nil
}

func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	if idx := strings.Index(cleaned, "\n"); idx >= 0 {
		// Drop a language hint such as ```json or ```html.
		cleaned = cleaned[idx+1:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
