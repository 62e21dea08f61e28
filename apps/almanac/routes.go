package almanac

import (
	"fmt"
	"net/http"
)

func (app *Almanac) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.eventsRoutes(apiPrefix, mux)
	app.briefsRoutes(apiPrefix, mux)
	app.notificationsRoutes(apiPrefix, mux)
	app.feedRoutes(apiPrefix, mux)
}

func (app *Almanac) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
