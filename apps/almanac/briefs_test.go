package almanac_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"calendar.nationaldaily.com/apps/almanac/internal/dtos"
)

func TestBriefHandler(t *testing.T) {
	views := getEvents(t, "")
	require.NotEmpty(t, views)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/brief", testApp.GetName(), views[0].ID),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var result map[string]string
	err := httptools.ReadJSON(rs.Body, &result)
	require.NoError(t, err)

	assert.Equal(t, "generated text", result["brief"])
}

func TestBriefHandlerUsesOriginalDate(t *testing.T) {
	views := getEvents(t, "")
	require.NotEmpty(t, views)

	var eventID string
	for _, view := range views {
		if view.Title == "Independence Day" {
			eventID = view.ID
			require.Equal(t, "1960-10-01", view.OriginalDate)
		}
	}
	require.NotEmpty(t, eventID)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/brief", testApp.GetName(), eventID),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	assert.Contains(t, testGemini.LastTextPrompt, `occurred on 1960-10-01`)
}

func TestBriefHandlerModelFailure(t *testing.T) {
	testGemini.TextErr = fmt.Errorf("model offline")
	defer func() { testGemini.TextErr = nil }()

	views := getEvents(t, "")
	require.NotEmpty(t, views)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/brief", testApp.GetName(), views[0].ID),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var result map[string]string
	err := httptools.ReadJSON(rs.Body, &result)
	require.NoError(t, err)

	assert.Equal(
		t,
		"Failed to generate brief. Please try again later.",
		result["brief"],
	)
}

func TestStrategyHandler(t *testing.T) {
	views := getEvents(t, "")
	require.NotEmpty(t, views)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/strategy", testApp.GetName(), views[0].ID),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var result map[string]string
	err := httptools.ReadJSON(rs.Body, &result)
	require.NoError(t, err)

	assert.Equal(t, "generated text", result["strategy"])
}

func TestEmailHandler(t *testing.T) {
	views := getEvents(t, "workers")
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
	rs := assign.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/email", testApp.GetName(), views[0].ID),
	)

	rs = tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var result map[string]string
	err := httptools.ReadJSON(rs.Body, &result)
	require.NoError(t, err)

	assert.Equal(t, "mock subject", result["subject"])
	assert.Equal(t, "mock body", result["body"])
	assert.True(
		t,
		strings.HasPrefix(result["mailtoLink"], "mailto:ntaelizabeth7@gmail.com?"),
	)
	assert.Contains(t, result["mailtoLink"], "%20")
	assert.NotContains(t, result["mailtoLink"], "+")
}

func TestEmailHandlerNoEditor(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events", testApp.GetName()),
	)
	tReq.SetData(dtos.CreateEventDto{
		Title:        "Unassigned Event",
		OriginalDate: "1999-03-03",
		Description:  "Nobody owns this yet.",
		Category:     "Culture",
	})
	rs := tReq.Do(t)
	require.Equal(t, http.StatusCreated, rs.StatusCode)

	views := getEvents(t, "Unassigned Event")
	require.NotEmpty(t, views)

	email := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/%s/email", testApp.GetName(), views[0].ID),
	)

	rs = email.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}
