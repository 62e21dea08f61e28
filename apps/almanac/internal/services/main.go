package services

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/threading"

	"calendar.nationaldaily.com/apps/almanac/internal/repositories"
	"calendar.nationaldaily.com/apps/almanac/pkg/gemini"
	"calendar.nationaldaily.com/internal/auth"
	"calendar.nationaldaily.com/internal/config"
)

type Services struct {
	Auth          auth.Service
	Events        *EventService
	Notifications *NotificationService
	Gemini        *GeminiService
	Mail          *MailService
	WebSocket     *WebSocketService
}

func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	repositories *repositories.Repositories,
	geminiClient gemini.Client,
	authService auth.Service,
) *Services {
	notifications := NewNotificationService(logger, repositories.Snapshots)
	events := NewEventService(logger, repositories.Snapshots, notifications)
	geminiService := NewGeminiService(
		logger,
		geminiClient,
		config.GeminiModel,
		config.GeminiStrategyModel,
	)

	return &Services{
		Auth:          authService,
		Events:        events,
		Notifications: notifications,
		Gemini:        geminiService,
		Mail:          NewMailService(config.SenderName),
		WebSocket:     NewWebSocketService(logger, []string{config.WebURL}, jobQueue),
	}
}
