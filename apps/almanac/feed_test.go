package almanac_test

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestFeedHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/feed/calendar.ics", testApp.GetName()),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "text/calendar", rs.Header.Get("Content-Type"))

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	feed := string(body)
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "END:VCALENDAR")
	assert.Contains(t, feed, "SUMMARY:Independence Day")
}
