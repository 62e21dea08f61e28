package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calendar.nationaldaily.com/apps/almanac/internal/services"
)

func TestComposeLink(t *testing.T) {
	mail := services.NewMailService("Editorial Team")

	link := mail.ComposeLink(
		"ntaelizabeth7@gmail.com",
		"Assignment: Independence Day",
		"Drafted content goes here.",
		"Independence Day",
		"Oct 1, 2025",
	)

	assert.True(t, len(link) > 0)
	assert.Contains(t, link, "mailto:ntaelizabeth7@gmail.com?subject=")
	assert.Contains(t, link, "Assignment%3A%20Independence%20Day")
	assert.Contains(t, link, "AI%20CONTENT%3A")
	assert.Contains(t, link, "Editorial%20Team")
	assert.NotContains(t, link, "+")
}

func TestComposeLinkEscapesAmpersands(t *testing.T) {
	mail := services.NewMailService("Editorial Team")

	link := mail.ComposeLink(
		"editor@nationaldaily.com",
		"Q&A session",
		"Body & more",
		"Q&A session",
		"Jan 1, 2026",
	)

	assert.Contains(t, link, "Q%26A")
	assert.NotContains(t, link, "subject=Q&A")
}
