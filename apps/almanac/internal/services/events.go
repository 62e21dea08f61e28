package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendar.nationaldaily.com/apps/almanac/internal/dtos"
	"calendar.nationaldaily.com/apps/almanac/internal/models"
	"calendar.nationaldaily.com/apps/almanac/internal/repositories"
)

// EventView pairs an event with its derived occurrence info for display.
type EventView struct {
	models.HistoricalEvent
	DateInfo models.DateDisplayInfo `json:"dateInfo"`
}

// EventService owns the authoritative in-memory event collection. Postgres
// only ever sees full snapshots of it, written after each mutation.
type EventService struct {
	logger        *slog.Logger
	mu            sync.Mutex
	events        []models.HistoricalEvent
	snapshots     *repositories.SnapshotRepository
	notifications *NotificationService
}

func NewEventService(
	logger *slog.Logger,
	snapshots *repositories.SnapshotRepository,
	notifications *NotificationService,
) *EventService {
	return &EventService{
		logger:        logger,
		mu:            sync.Mutex{},
		events:        []models.HistoricalEvent{},
		snapshots:     snapshots,
		notifications: notifications,
	}
}

// Load restores the event snapshot, or seeds the built-in list when none
// exists yet. The seed itself is not snapshotted: only mutations write, so
// an empty collection can never clobber seed data during startup.
func (service *EventService) Load(ctx context.Context) error {
	saved, found, err := service.snapshots.LoadEvents(ctx)
	if err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	if found {
		service.events = saved
		return nil
	}

	service.events = models.SeedEvents()
	return nil
}

// Search returns a freshly derived view: case-insensitive substring match on
// title or category, sorted soonest first, ties kept in insertion order.
// Events whose stored date no longer parses are skipped and logged.
func (service *EventService) Search(term string) []EventView {
	return service.SearchAt(term, time.Now().UTC())
}

// SearchAt is Search against an explicit reference day.
func (service *EventService) SearchAt(term string, today time.Time) []EventView {
	service.mu.Lock()
	events := make([]models.HistoricalEvent, len(service.events))
	copy(events, service.events)
	service.mu.Unlock()

	views := []EventView{}
	for _, event := range events {
		if !event.Matches(term) {
			continue
		}

		info, err := event.DateInfo(today)
		if err != nil {
			service.logger.Warn(
				fmt.Sprintf("skipping event %s", event.ID),
				logging.ErrAttr(err),
			)
			continue
		}

		views = append(views, EventView{
			HistoricalEvent: event,
			DateInfo:        info,
		})
	}

	slices.SortStableFunc(views, func(a EventView, b EventView) int {
		return a.DateInfo.DaysRemaining - b.DateInfo.DaysRemaining
	})

	return views
}

func (service *EventService) GetByID(
	id string,
) (*models.HistoricalEvent, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	for _, event := range service.events {
		if event.ID == id {
			return &event, nil
		}
	}

	return nil, database.ErrResourceNotFound
}

// Add appends a manually logged event under a fresh collision-resistant id
// and emits an info notification.
func (service *EventService) Add(
	ctx context.Context,
	createEventDto dtos.CreateEventDto,
) models.HistoricalEvent {
	event := models.HistoricalEvent{
		ID:             uuid.NewString(),
		Title:          createEventDto.Title,
		OriginalDate:   createEventDto.OriginalDate,
		Description:    createEventDto.Description,
		Category:       createEventDto.Category,
		AssignedEditor: nil,
		IsManual:       true,
	}

	service.mu.Lock()
	service.events = append(service.events, event)
	snapshot := service.snapshotLocked()
	service.mu.Unlock()

	service.persist(ctx, snapshot)
	service.notifications.Push(
		ctx,
		models.NotificationInfo,
		fmt.Sprintf(
			"New Event Logged: %q has been added to the calendar.",
			event.Title,
		),
	)

	return event
}

// AssignEditor replaces the event's editor wholesale and emits an assignment
// notification. A missing id is a caller bug and surfaces as not-found.
func (service *EventService) AssignEditor(
	ctx context.Context,
	id string,
	editor models.Editor,
) (*models.HistoricalEvent, error) {
	service.mu.Lock()

	index := slices.IndexFunc(
		service.events,
		func(event models.HistoricalEvent) bool { return event.ID == id },
	)
	if index < 0 {
		service.mu.Unlock()
		return nil, database.ErrResourceNotFound
	}

	service.events[index].AssignedEditor = &editor
	event := service.events[index]
	snapshot := service.snapshotLocked()
	service.mu.Unlock()

	service.persist(ctx, snapshot)
	service.notifications.Push(
		ctx,
		models.NotificationAssignment,
		fmt.Sprintf(
			"Reminder: %q has been assigned to %s. Preparation should start now.",
			event.Title,
			editor.Name,
		),
	)

	return &event, nil
}

// Merge adds sourced events that are not already present, keyed by id.
// Existing events, including manual ones and assignments, are untouched.
func (service *EventService) Merge(
	ctx context.Context,
	incoming []models.HistoricalEvent,
) int {
	service.mu.Lock()

	known := make(map[string]struct{}, len(service.events))
	for _, event := range service.events {
		known[event.ID] = struct{}{}
	}

	added := 0
	for _, event := range incoming {
		if _, ok := known[event.ID]; ok {
			continue
		}

		known[event.ID] = struct{}{}
		service.events = append(service.events, event)
		added++
	}

	var snapshot []models.HistoricalEvent
	if added > 0 {
		snapshot = service.snapshotLocked()
	}
	service.mu.Unlock()

	if added > 0 {
		service.persist(ctx, snapshot)
	}

	return added
}

func (service *EventService) snapshotLocked() []models.HistoricalEvent {
	snapshot := make([]models.HistoricalEvent, len(service.events))
	copy(snapshot, service.events)
	return snapshot
}

func (service *EventService) persist(
	ctx context.Context,
	snapshot []models.HistoricalEvent,
) {
	err := service.snapshots.SaveEvents(ctx, snapshot)
	if err != nil {
		service.logger.Error("failed to snapshot events", logging.ErrAttr(err))
	}
}
