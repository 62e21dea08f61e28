package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendar.nationaldaily.com/apps/almanac/internal/models"
	"calendar.nationaldaily.com/apps/almanac/internal/repositories"
)

// NotificationService owns the in-memory notification feed, newest first.
// Every mutation is snapshotted in full and pushed to connected clients.
type NotificationService struct {
	logger        *slog.Logger
	mu            sync.Mutex
	notifications []models.SystemNotification
	snapshots     *repositories.SnapshotRepository
	subscribers   map[*websocket.Conn]struct{}
}

func NewNotificationService(
	logger *slog.Logger,
	snapshots *repositories.SnapshotRepository,
) *NotificationService {
	return &NotificationService{
		logger:        logger,
		mu:            sync.Mutex{},
		notifications: []models.SystemNotification{},
		snapshots:     snapshots,
		subscribers:   make(map[*websocket.Conn]struct{}),
	}
}

func (service *NotificationService) Load(ctx context.Context) error {
	saved, found, err := service.snapshots.LoadNotifications(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.notifications = saved

	return nil
}

func (service *NotificationService) All() []models.SystemNotification {
	service.mu.Lock()
	defer service.mu.Unlock()

	result := make([]models.SystemNotification, len(service.notifications))
	copy(result, service.notifications)
	return result
}

// Push prepends a notification and mirrors the feed to storage. Persistence
// failures are logged, never surfaced to the mutating caller.
func (service *NotificationService) Push(
	ctx context.Context,
	notificationType models.NotificationType,
	message string,
) models.SystemNotification {
	notification := models.SystemNotification{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UTC(),
		Type:      notificationType,
		IsRead:    false,
	}

	service.mu.Lock()
	service.notifications = append(
		[]models.SystemNotification{notification},
		service.notifications...,
	)
	snapshot := make([]models.SystemNotification, len(service.notifications))
	copy(snapshot, service.notifications)
	service.mu.Unlock()

	service.persist(ctx, snapshot)
	service.broadcast(ctx, notification)

	return notification
}

func (service *NotificationService) Clear(ctx context.Context) {
	service.mu.Lock()
	service.notifications = []models.SystemNotification{}
	service.mu.Unlock()

	service.persist(ctx, []models.SystemNotification{})
}

func (service *NotificationService) persist(
	ctx context.Context,
	snapshot []models.SystemNotification,
) {
	err := service.snapshots.SaveNotifications(ctx, snapshot)
	if err != nil {
		service.logger.Error(
			"failed to snapshot notifications",
			logging.ErrAttr(err),
		)
	}
}

func (service *NotificationService) Subscribe(conn *websocket.Conn) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.subscribers[conn] = struct{}{}
}

func (service *NotificationService) Unsubscribe(conn *websocket.Conn) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.subscribers, conn)
}

func (service *NotificationService) broadcast(
	ctx context.Context,
	notification models.SystemNotification,
) {
	service.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(service.subscribers))
	for conn := range service.subscribers {
		conns = append(conns, conn)
	}
	service.mu.Unlock()

	for _, conn := range conns {
		err := wsjson.Write(ctx, conn, notification)
		if err != nil {
			service.logger.Debug(
				fmt.Sprintf("dropping notification subscriber: %v", err),
			)
			service.Unsubscribe(conn)
		}
	}
}
