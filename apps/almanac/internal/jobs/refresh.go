package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"calendar.nationaldaily.com/apps/almanac/internal/services"
)

// RefreshJobID is also the websocket topic on which refresh state is
// published.
const RefreshJobID = "almanac-refresh"

// RefreshJob periodically asks the model for additional historical events
// and merges them into the calendar. Events already present are left alone.
type RefreshJob struct {
	eventService  *services.EventService
	geminiService *services.GeminiService
}

func NewRefreshJob(
	eventService *services.EventService,
	geminiService *services.GeminiService,
) RefreshJob {
	return RefreshJob{
		eventService:  eventService,
		geminiService: geminiService,
	}
}

func (j RefreshJob) ID() string {
	return RefreshJobID
}

func (j RefreshJob) RunEvery() time.Duration {
	//nolint:mnd //no magic number
	return 24 * time.Hour
}

func (j RefreshJob) Run(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("fetching sourced events")
	fetched := j.geminiService.FetchEvents(ctx)
	logger.Debug(fmt.Sprintf("fetched %d events", len(fetched)))

	if len(fetched) == 0 {
		return nil
	}

	added := j.eventService.Merge(ctx, fetched)
	logger.Debug(fmt.Sprintf("merged %d new events", added))
	return nil
}
