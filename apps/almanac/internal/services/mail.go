package services

import (
	"fmt"
	"net/url"
	"strings"
)

// MailService builds mailto links for assignment emails. Sending happens in
// the editor's own mail client, so there is no SMTP concern here.
type MailService struct {
	senderName string
}

func NewMailService(senderName string) *MailService {
	return &MailService{senderName: senderName}
}

// ComposeLink returns a mailto URL for the given recipient with the AI
// drafted content embedded in the body. Spaces are encoded as %20 since many
// mail clients render "+" literally.
func (service *MailService) ComposeLink(
	recipient string,
	subject string,
	body string,
	eventTitle string,
	eventDate string,
) string {
	fullBody := fmt.Sprintf(
		"Hello,\n\nRegarding the upcoming event: %s (%s).\n\nAI CONTENT:\n%s\n\nRegards,\n%s",
		eventTitle, eventDate, body, service.senderName,
	)

	return fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		recipient,
		escapeQuery(subject),
		escapeQuery(fullBody),
	)
}

func escapeQuery(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
