package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendar.nationaldaily.com/apps/almanac/internal/models"
	"calendar.nationaldaily.com/apps/almanac/pkg/gemini"
)

const (
	briefUnavailableMessage = "AI Service Unavailable: " +
		"Please check your API Key configuration."
	briefFailedMessage    = "Failed to generate brief. Please try again later."
	strategyUnavailable   = "AI Service Unavailable."
	strategyFailedMessage = "Failed to generate strategic plan."
)

// ErrGenerationInFlight signals that the same brief, strategy or email is
// already being generated; callers surface it instead of issuing a second
// concurrent call for the same slot.
var ErrGenerationInFlight = errors.New("a generation for this event is already running")

// GeminiService wraps every model call behind a circuit breaker and a
// per-slot in-flight guard. Model failures never escape: each operation has
// a deterministic local fallback.
type GeminiService struct {
	logger        *slog.Logger
	client        gemini.Client
	model         string
	strategyModel string
	breaker       *gobreaker.CircuitBreaker

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGeminiService(
	logger *slog.Logger,
	client gemini.Client,
	model string,
	strategyModel string,
) *GeminiService {
	//nolint:exhaustruct //other settings keep their defaults
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			//nolint:mnd //trip after a run of failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn(fmt.Sprintf(
				"circuit breaker %s changed from %s to %s",
				name, from, to,
			))
		},
	})

	return &GeminiService{
		logger:        logger,
		client:        client,
		model:         model,
		strategyModel: strategyModel,
		breaker:       breaker,
		mu:            sync.Mutex{},
		inFlight:      make(map[string]struct{}),
	}
}

func (service *GeminiService) acquire(slot string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, busy := service.inFlight[slot]; busy {
		return ErrGenerationInFlight
	}

	service.inFlight[slot] = struct{}{}
	return nil
}

func (service *GeminiService) release(slot string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.inFlight, slot)
}

func (service *GeminiService) generateText(
	ctx context.Context,
	model string,
	prompt string,
) (string, error) {
	result, err := service.breaker.Execute(func() (any, error) {
		return service.client.GenerateText(ctx, model, prompt)
	})
	if err != nil {
		return "", err
	}

	text, ok := result.(string)
	if !ok {
		return "", errors.New("unexpected breaker result type")
	}

	return text, nil
}

// GenerateBrief returns an editorial brief for the event, or a user-visible
// error string when the model is unreachable. The only returned error is
// ErrGenerationInFlight.
func (service *GeminiService) GenerateBrief(
	ctx context.Context,
	eventID string,
	title string,
	date string,
) (string, error) {
	if !service.client.Enabled() {
		return briefUnavailableMessage, nil
	}

	slot := "brief:" + eventID
	if err := service.acquire(slot); err != nil {
		return "", err
	}
	defer service.release(slot)

	prompt := fmt.Sprintf(
		`You are an expert editorial consultant for a Nigerian History magazine.
Create a concise but comprehensive editorial brief for a writer assigned to cover the event: %q which occurred on %s.

The brief must include:
1. Historical Context (What led to this?)
2. Key Figures (Who were the main players?)
3. Significance (Why does it matter today?)
4. Suggested Angle (How should a modern article approach this?)

Keep it under 300 words. Format with clear headings.`,
		title, date,
	)

	brief, err := service.generateText(ctx, service.model, prompt)
	if err != nil {
		service.logger.Error("brief generation failed", logging.ErrAttr(err))
		return briefFailedMessage, nil
	}

	return brief, nil
}

// GenerateStrategy has the same contract as GenerateBrief but uses the
// heavier strategy model.
func (service *GeminiService) GenerateStrategy(
	ctx context.Context,
	eventID string,
	title string,
	description string,
) (string, error) {
	if !service.client.Enabled() {
		return strategyUnavailable, nil
	}

	slot := "strategy:" + eventID
	if err := service.acquire(slot); err != nil {
		return "", err
	}
	defer service.release(slot)

	prompt := fmt.Sprintf(
		`Develop a comprehensive, high-level multi-platform content strategy for the historical event: %q.
Context: %s

The strategy should include:
1. A Long-form Article Angle (investigative or narrative style).
2. Three engaging Social Media hooks (Twitter/X threads, Instagram visual ideas).
3. A Podcast/Audio discussion theme.
4. Target Audience analysis for modern Nigeria.

Think deeply about cultural nuances, modern relevance, and how to capture the attention of Gen Z and Millennials.`,
		title, description,
	)

	strategy, err := service.generateText(ctx, service.strategyModel, prompt)
	if err != nil {
		service.logger.Error("strategy generation failed", logging.ErrAttr(err))
		return strategyFailedMessage, nil
	}

	return strategy, nil
}

type draftedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DraftEmail returns a subject and body for an assignment email. Every
// failure path falls back to deterministic local content built only from the
// inputs; the only returned error is ErrGenerationInFlight.
func (service *GeminiService) DraftEmail(
	ctx context.Context,
	eventID string,
	editorName string,
	title string,
	taskDescription string,
) (string, string, error) {
	if !service.client.Enabled() {
		return fmt.Sprintf("Assignment: %s", title),
			fmt.Sprintf(
				"Please check the dashboard for details regarding %s.",
				title,
			),
			nil
	}

	slot := "email:" + eventID
	if err := service.acquire(slot); err != nil {
		return "", "", err
	}
	defer service.release(slot)

	prompt := fmt.Sprintf(
		`Write a professional, encouraging email from an Editor-in-Chief to an editor named %s.
Topic: Assignment regarding %q.
Context: %s

The email should be concise, professional, and motivating.
Return the output as a JSON object with 'subject' and 'body' fields.`,
		editorName, title, taskDescription,
	)

	schema := &gemini.Schema{
		Type: "OBJECT",
		Properties: map[string]*gemini.Schema{
			"subject": {Type: "STRING"},
			"body":    {Type: "STRING"},
		},
		Required: []string{"subject", "body"},
	}

	var drafted draftedEmail
	_, err := service.breaker.Execute(func() (any, error) {
		return nil, service.client.GenerateJSON(
			ctx,
			service.model,
			prompt,
			schema,
			&drafted,
		)
	})
	if err != nil || drafted.Subject == "" || drafted.Body == "" {
		if err != nil {
			service.logger.Error("email draft failed", logging.ErrAttr(err))
		}
		return fmt.Sprintf("Update: %s", title),
			fmt.Sprintf(
				"Hi %s,\n\nPlease review the details for the upcoming event: %s.\n\nBest,\nEditorial Team",
				editorName, title,
			),
			nil
	}

	return drafted.Subject, drafted.Body, nil
}

// FetchEvents asks the model for additional historical events. Entries that
// fail schema or date validation are dropped; any transport failure yields an
// empty list so the caller's collection stays untouched.
func (service *GeminiService) FetchEvents(
	ctx context.Context,
) []models.HistoricalEvent {
	if !service.client.Enabled() {
		return nil
	}

	prompt := `Generate a list of 5 significant and distinct historical events in Nigeria's history that are NOT common holidays (e.g. obscure historical treaties, specific battles, cultural founding dates).
Ensure the dates are accurate. Do not duplicate common holidays like Independence Day or Christmas.`

	schema := &gemini.Schema{
		Type: "ARRAY",
		Items: &gemini.Schema{
			Type: "OBJECT",
			Properties: map[string]*gemini.Schema{
				"id":          {Type: "STRING"},
				"title":       {Type: "STRING"},
				"originalDate": {
					Type:        "STRING",
					Description: "Format YYYY-MM-DD",
				},
				"description": {Type: "STRING"},
				"category": {
					Type:        "STRING",
					Description: "e.g., Politics, Culture, Military",
				},
			},
			Required: []string{
				"id", "title", "originalDate", "description", "category",
			},
		},
	}

	var fetched []models.HistoricalEvent
	_, err := service.breaker.Execute(func() (any, error) {
		return nil, service.client.GenerateJSON(
			ctx,
			service.model,
			prompt,
			schema,
			&fetched,
		)
	})
	if err != nil {
		service.logger.Error("event fetch failed", logging.ErrAttr(err))
		return nil
	}

	valid := []models.HistoricalEvent{}
	for _, event := range fetched {
		if event.ID == "" || event.Title == "" || event.Category == "" {
			service.logger.Warn("dropping sourced event with missing fields")
			continue
		}
		if _, err = event.ParseOriginalDate(); err != nil {
			service.logger.Warn(
				fmt.Sprintf("dropping sourced event %s", event.ID),
				logging.ErrAttr(err),
			)
			continue
		}

		valid = append(valid, event)
	}

	return valid
}
