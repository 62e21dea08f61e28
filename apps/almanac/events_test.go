package almanac_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"calendar.nationaldaily.com/apps/almanac/internal/dtos"
	"calendar.nationaldaily.com/apps/almanac/internal/services"
)

func getEvents(t *testing.T, search string) []services.EventView {
	t.Helper()

	target := fmt.Sprintf("/%s/api/events", testApp.GetName())

	tReq := test.CreateRequestTester(getRoutes(), http.MethodGet, target)
	if search != "" {
		tReq.SetQuery(url.Values{"search": []string{search}})
	}

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var views []services.EventView
	err := httptools.ReadJSON(rs.Body, &views)
	require.NoError(t, err)

	return views
}

func TestGetEventsHandler(t *testing.T) {
	views := getEvents(t, "")

	require.NotEmpty(t, views)

	for i := 1; i < len(views); i++ {
		assert.LessOrEqual(
			t,
			views[i-1].DateInfo.DaysRemaining,
			views[i].DateInfo.DaysRemaining,
		)
	}

	for _, view := range views {
		assert.GreaterOrEqual(t, view.DateInfo.DaysRemaining, 0)
		assert.NotEmpty(t, view.DateInfo.FormattedDate)
	}
}

func TestGetEventsHandlerSearch(t *testing.T) {
	views := getEvents(t, "independence")

	require.NotEmpty(t, views)
	for _, view := range views {
		assert.True(t, view.Matches("independence"))
	}
}

func TestGetEventsHandlerSearchNoResults(t *testing.T) {
	views := getEvents(t, "definitely-not-an-event")

	assert.Empty(t, views)
}

func TestCreateEventHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events", testApp.GetName()),
	)

	tReq.SetData(dtos.CreateEventDto{
		Title:        "Test Launch Day",
		OriginalDate: "2001-05-14",
		Description:  "A manually logged event.",
		Category:     "Culture",
	})

	rs := tReq.Do(t)
	require.Equal(t, http.StatusCreated, rs.StatusCode)

	views := getEvents(t, "Test Launch Day")
	require.NotEmpty(t, views)
	assert.True(t, views[0].IsManual)
	assert.Equal(t, "Culture", views[0].Category)
}

func TestCreateEventHandlerInvalidDate(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events", testApp.GetName()),
	)

	tReq.SetData(dtos.CreateEventDto{
		Title:        "Broken Event",
		OriginalDate: "14-05-2001",
		Description:  "Wrong date layout.",
		Category:     "Culture",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestAssignEditorHandler(t *testing.T) {
	views := getEvents(t, "independence")
	require.NotEmpty(t, views)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/%s/assign", testApp.GetName(), views[0].ID),
	)

	tReq.SetData(dtos.AssignEditorDto{
		Name:  "Nta Elizabeth",
		Email: "ntaelizabeth7@gmail.com",
	})

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	updated := getEvents(t, "independence")
	require.NotEmpty(t, updated)
	require.NotNil(t, updated[0].AssignedEditor)
	assert.Equal(t, "Nta Elizabeth", updated[0].AssignedEditor.Name)
}

func TestAssignEditorHandlerUnknownEvent(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/%s/assign", testApp.GetName(), "missing-id"),
	)

	tReq.SetData(dtos.AssignEditorDto{
		Name:  "Nta Elizabeth",
		Email: "ntaelizabeth7@gmail.com",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}
