package almanac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"calendar.nationaldaily.com/apps/almanac/internal/jobs"
)

func TestRefreshJob(t *testing.T) {
	testGemini.JSONResponse = `[
		{
			"id": "evt-kano-durbar",
			"title": "Kano Durbar Festival Charter",
			"originalDate": "1913-07-09",
			"description": "Formal charter of the Kano Durbar procession.",
			"category": "Culture"
		}
	]`
	defer func() {
		testGemini.JSONResponse = `{"subject":"mock subject","body":"mock body"}`
	}()

	job := jobs.NewRefreshJob(testApp.Services.Events, testApp.Services.Gemini)
	job.ID()
	job.RunEvery()

	err := job.Run(context.Background(), logging.NewNopLogger())
	assert.Nil(t, err)

	views := getEvents(t, "Kano Durbar")
	require.Len(t, views, 1)
	assert.False(t, views[0].IsManual)

	// already merged, so a second run changes nothing
	err = job.Run(context.Background(), logging.NewNopLogger())
	assert.Nil(t, err)
	assert.Len(t, getEvents(t, "Kano Durbar"), 1)
}
