// Package suggest implements the AI-backed maintenance-task suggestion
// generator. It asks an OpenAI-compatible structured-output endpoint for a
// short list of tasks tailored to a car, validates the returned shape, and
// degrades to a fixed fallback list on any failure.
//
// GenerateSuggestions never returns an error: transport failures, provider
// errors, schema violations and a missing configuration all collapse into
// the same deterministic fallback, so callers can rely on always receiving
// a non-empty list.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMinLen = 10
	descriptionMaxLen = 500
)

const systemPrompt = "Du er en erfaren norsk bilmekaniker. Du foreslår konkrete, realistiske " +
	"vedlikeholdsoppgaver basert på bilens merke, modell og årgang. " +
	"Alltid svar med et gyldig JSON-objekt med feltet 'tasks': en liste med 3 oppgaver på norsk bokmål. " +
	"Hver oppgave har feltene 'title' (kort), 'description' (rundt 20 ord) og 'timeUse' (forventet tid i minutter, heltall). " +
	"Velg oppgaver som er relevante for den konkrete bilen og nevn bilmodellen i beskrivelsen ved behov."

// Suggestion is one generated maintenance-task candidate.
type Suggestion struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TimeUse     int     `json:"timeUse"`
}

// CarInfo carries the car attributes embedded into the generation prompt.
type CarInfo struct {
	RegNr string
	Make  string
	Model string
	Year  int
}

// Generator requests task suggestions from the configured generation
// service. A zero or partial AI configuration produces a generator that
// serves the fallback list only.
type Generator struct {
	client *resty.Client
	model  string
	logger *logger.Logger

	// enabled is false when the AI section of the config is incomplete;
	// the upstream call is then skipped entirely.
	enabled bool
}

// NewGenerator constructs a suggestion generator from cfg.
func NewGenerator(cfg config.AI, log *logger.Logger) *Generator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	enabled := cfg.BaseURL != "" && cfg.APIKey != "" && cfg.Model != ""
	if !enabled {
		log.Warn().Msg("suggestion service not configured, generator will serve fallback suggestions only")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &Generator{
		client:  cli,
		model:   cfg.Model,
		logger:  log,
		enabled: enabled,
	}
}

// chat completions request/response shapes, reduced to the fields used here.
type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type suggestionList struct {
	Tasks []Suggestion `json:"tasks"`
}

// GenerateSuggestions returns maintenance-task suggestions for the given
// car. It never fails: any upstream or validation problem is logged and
// replaced with [FallbackSuggestions], so the result is always non-empty.
func (g *Generator) GenerateSuggestions(ctx context.Context, car CarInfo) []Suggestion {
	log := logger.FromContext(ctx)

	if !g.enabled {
		return FallbackSuggestions()
	}

	req := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Foreslå vedlikeholdsoppgaver for en %d %s %s med regnr %s.",
				car.Year, car.Make, car.Model, car.RegNr)},
		},
	}
	req.ResponseFormat.Type = "json_object"

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/chat/completions")
	if err != nil {
		log.Err(err).Str("reg_nr", car.RegNr).Msg("suggestion generation request failed, using fallback")
		return FallbackSuggestions()
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Warn().Int("status", resp.StatusCode()).Str("reg_nr", car.RegNr).Msg("suggestion service responded with non-success status, using fallback")
		return FallbackSuggestions()
	}

	suggestions, err := parseSuggestions(resp.Body())
	if err != nil {
		log.Warn().Err(err).Str("reg_nr", car.RegNr).Msg("suggestion response failed validation, using fallback")
		return FallbackSuggestions()
	}

	return suggestions
}

// parseSuggestions decodes the chat completion body and validates the
// embedded task list against the suggestion schema. A violation anywhere
// fails the whole call: partial lists are never returned.
func parseSuggestions(body []byte) ([]Suggestion, error) {
	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("completion response carries no choices")
	}

	var list suggestionList
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &list); err != nil {
		return nil, fmt.Errorf("decode suggestion list: %w", err)
	}
	if len(list.Tasks) == 0 {
		return nil, fmt.Errorf("suggestion list is empty")
	}

	for i, s := range list.Tasks {
		if err := validateSuggestion(s); err != nil {
			return nil, fmt.Errorf("suggestion %d: %w", i, err)
		}
	}

	return list.Tasks, nil
}

func validateSuggestion(s Suggestion) error {
	if n := utf8.RuneCountInString(s.Title); n < titleMinLen || n > titleMaxLen {
		return fmt.Errorf("title length %d is out of range [%d, %d]", n, titleMinLen, titleMaxLen)
	}
	if s.Description != nil {
		if n := utf8.RuneCountInString(*s.Description); n < descriptionMinLen || n > descriptionMaxLen {
			return fmt.Errorf("description length %d is out of range [%d, %d]", n, descriptionMinLen, descriptionMaxLen)
		}
	}
	if s.TimeUse <= 0 {
		return fmt.Errorf("time use %d is not a positive integer", s.TimeUse)
	}
	return nil
}
