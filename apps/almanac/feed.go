package almanac

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
)

func (app *Almanac) feedRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/feed/calendar.ics", prefix),
		app.Services.Auth.Access(app.feedHandler),
	)
}

// feedHandler serves the upcoming occurrence of every event as an all-day
// ICS feed, so the calendar can be followed from any external client.
func (app *Almanac) feedHandler(w http.ResponseWriter, r *http.Request) {
	views := app.Services.Events.Search("")

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName("Editorial Calendar")

	now := time.Now()
	for _, view := range views {
		event := cal.AddEvent(view.ID)
		event.SetDtStampTime(now)
		event.SetSummary(view.Title)
		event.SetDescription(view.Description)
		event.SetAllDayStartAt(view.DateInfo.NextOccurrence)
		//nolint:mnd //single-day occurrence
		event.SetAllDayEndAt(view.DateInfo.NextOccurrence.Add(24 * time.Hour))
		if view.Category != "" {
			event.SetProperty(ics.ComponentPropertyCategories, view.Category)
		}
	}

	w.Header().Set("Content-Type", "text/calendar")
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		panic(err)
	}
}
