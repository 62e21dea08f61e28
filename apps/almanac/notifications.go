package almanac

import (
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
)

func (app *Almanac) notificationsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/notifications", prefix),
		app.Services.Auth.Access(app.getNotificationsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/notifications/clear", prefix),
		app.Services.Auth.Access(app.clearNotificationsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/notifications/subscribe", prefix),
		app.Services.Auth.Access(app.notificationsSubscribeHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", prefix),
		app.Services.WebSocket.Handler(),
	)
}

func (app *Almanac) getNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Services.Notifications.All())
}

func (app *Almanac) clearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	app.Services.Notifications.Clear(r.Context())

	writeJSON(w, http.StatusOK, app.Services.Notifications.All())
}

// notificationsSubscribeHandler streams every new notification to the
// connected client until it disconnects.
func (app *Almanac) notificationsSubscribeHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	conn, err := websocket.Accept(
		w,
		r,
		//nolint:exhaustruct //other fields are optional
		&websocket.AcceptOptions{InsecureSkipVerify: true},
	)
	if err != nil {
		log.Printf("websocket accept error: %v", err)
		return
	}
	defer conn.Close(
		websocket.StatusNormalClosure,
		"closing connection",
	)

	app.Services.Notifications.Subscribe(conn)
	defer app.Services.Notifications.Unsubscribe(conn)

	// block until the client goes away
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}
