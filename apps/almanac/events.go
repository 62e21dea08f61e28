package almanac

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"calendar.nationaldaily.com/apps/almanac/internal/dtos"
	"calendar.nationaldaily.com/apps/almanac/internal/models"
)

func (app *Almanac) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.Services.Auth.Access(app.getEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.Services.Auth.AdminAccess(app.createEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/assign", prefix),
		app.Services.Auth.AdminAccess(app.assignEditorHandler),
	)
}

// getEventsHandler returns all events enriched with occurrence math, sorted
// soonest first. An optional search parameter filters on title or category.
func (app *Almanac) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	writeJSON(w, http.StatusOK, app.Services.Events.Search(term))
}

func (app *Almanac) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var createEventDto dtos.CreateEventDto

	err := httptools.ReadJSON(r.Body, &createEventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createEventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event := app.Services.Events.Add(r.Context(), createEventDto)

	writeJSON(w, http.StatusCreated, event)
}

func (app *Almanac) assignEditorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var assignEditorDto dtos.AssignEditorDto

	err = httptools.ReadJSON(r.Body, &assignEditorDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := assignEditorDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event, err := app.Services.Events.AssignEditor(
		r.Context(),
		id,
		models.Editor{
			Name:  assignEditorDto.Name,
			Email: assignEditorDto.Email,
		},
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}
