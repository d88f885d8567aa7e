package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ausum/internal/apperr"
	"ausum/internal/config"
	"ausum/internal/logger"
)

// apiSummarizer calls the Gemini API directly instead of shelling out.
// Selected with summary.backend: api; the CLI fallback chain does not
// apply here, but quota errors rotate through the configured keys.
type apiSummarizer struct {
	cfg        *config.Config
	apiKeys    []string
	currentKey int
	logger     logger.Logger
}

func (s *apiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", apperr.New(apperr.ConfigurationInvalid,
			"summary.backend is \"api\" but no API key is configured (set summary.api_keys or GEMINI_API_KEY)")
	}

	prompt := buildPrompt(s.cfg.Summary.Prompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.cfg.Summary.APIModel, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "API key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", apperr.Wrap(apperr.SummarizationFailed, err, "summarization failed: %v", err)
		}

		text := responseText(result)
		if text == "" {
			return "", apperr.New(apperr.SummarizationFailed, "summarization produced no output")
		}
		return text, nil
	}

	return "", apperr.Wrap(apperr.SummarizationFailed, lastErr, "summarization failed, all API keys exhausted: %v", lastErr)
}

func (s *apiSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(text.String())
}
