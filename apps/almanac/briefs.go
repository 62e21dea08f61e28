package almanac

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"calendar.nationaldaily.com/apps/almanac/internal/models"
	"calendar.nationaldaily.com/apps/almanac/internal/services"
)

func (app *Almanac) briefsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}/brief", prefix),
		app.Services.Auth.Access(app.briefHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}/strategy", prefix),
		app.Services.Auth.Access(app.strategyHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}/email", prefix),
		app.Services.Auth.Access(app.emailHandler),
	)
}

func (app *Almanac) briefHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	brief, err := app.Services.Gemini.GenerateBrief(
		r.Context(),
		event.ID,
		event.Title,
		event.OriginalDate,
	)
	if err != nil {
		app.generationErrorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"brief": brief})
}

func (app *Almanac) strategyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	strategy, err := app.Services.Gemini.GenerateStrategy(
		r.Context(),
		event.ID,
		event.Title,
		event.Description,
	)
	if err != nil {
		app.generationErrorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"strategy": strategy})
}

type EmailResponse struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	MailtoLink string `json:"mailtoLink"`
}

// emailHandler drafts an assignment email for the event's assigned editor
// and returns it together with a ready-made mailto link.
func (app *Almanac) emailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if event.AssignedEditor == nil {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"editor": "no editor has been assigned to this event",
		})
		return
	}

	info, err := event.DateInfo(models.Midnight(time.Now()))
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	subject, body, err := app.Services.Gemini.DraftEmail(
		r.Context(),
		event.ID,
		event.AssignedEditor.Name,
		event.Title,
		event.Description,
	)
	if err != nil {
		app.generationErrorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EmailResponse{
		Subject: subject,
		Body:    body,
		MailtoLink: app.Services.Mail.ComposeLink(
			event.AssignedEditor.Email,
			subject,
			body,
			event.Title,
			info.FormattedDate,
		),
	})
}

func (app *Almanac) generationErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrGenerationInFlight) {
		writeJSONError(w, http.StatusConflict, err.Error())
		return
	}

	panic(err)
}
