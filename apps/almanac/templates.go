package almanac

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"

	"calendar.nationaldaily.com/apps/almanac/internal/services"
	"calendar.nationaldaily.com/internal/constants"
	sharedmodels "calendar.nationaldaily.com/internal/models"
)

func (app *Almanac) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
}

type DashboardData struct {
	User   sharedmodels.User
	Events []services.EventView
}

func (app *Almanac) rootHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[sharedmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	data := DashboardData{
		User:   user.Public(),
		Events: app.Services.Events.Search(""),
	}

	tpltools.RenderWithPanic(app.tpl, w, "dashboard.html", data)
}
