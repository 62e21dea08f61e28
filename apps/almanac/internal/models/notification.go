package models

import "time"

type NotificationType string

const (
	NotificationInfo       NotificationType = "info"
	NotificationAssignment NotificationType = "assignment"
)

type SystemNotification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
}
