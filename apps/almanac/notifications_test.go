package almanac_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"calendar.nationaldaily.com/apps/almanac/internal/dtos"
	"calendar.nationaldaily.com/apps/almanac/internal/models"
)

func getNotifications(t *testing.T) []models.SystemNotification {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/notifications", testApp.GetName()),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var notifications []models.SystemNotification
	err := httptools.ReadJSON(rs.Body, &notifications)
	require.NoError(t, err)

	return notifications
}

func clearNotifications(t *testing.T) {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/notifications/clear", testApp.GetName()),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestClearNotificationsHandler(t *testing.T) {
	clearNotifications(t)

	assert.Empty(t, getNotifications(t))
}

func TestEventMutationsNotify(t *testing.T) {
	clearNotifications(t)

	create := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events", testApp.GetName()),
	)
	create.SetData(dtos.CreateEventDto{
		Title:        "Archive Digitisation Day",
		OriginalDate: "2010-07-07",
		Description:  "Marks the start of the archive digitisation project.",
		Category:     "Culture",
	})
	rs := create.Do(t)
	require.Equal(t, http.StatusCreated, rs.StatusCode)

	notifications := getNotifications(t)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationInfo, notifications[0].Type)
	assert.Equal(
		t,
		`New Event Logged: "Archive Digitisation Day" has been added to the calendar.`,
		notifications[0].Message,
	)

	views := getEvents(t, "Archive Digitisation Day")
	require.NotEmpty(t, views)

	assign := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/%s/assign", testApp.GetName(), views[0].ID),
	)
	assign.SetData(dtos.AssignEditorDto{
		Name:  "Nta Elizabeth",
		Email: "ntaelizabeth7@gmail.com",
	})
	rs = assign.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	notifications = getNotifications(t)
	require.Len(t, notifications, 2)

	// newest first
	assert.Equal(t, models.NotificationAssignment, notifications[0].Type)
	assert.Equal(
		t,
		`Reminder: "Archive Digitisation Day" has been assigned to Nta Elizabeth. `+
			`Preparation should start now.`,
		notifications[0].Message,
	)
}
