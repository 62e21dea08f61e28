package main

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"

	"calendar.nationaldaily.com/cmd/calendar/internal/dtos"
)

func (app *Application) authRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("POST /%s/auth/signin", prefix), app.signInHandler)
	mux.HandleFunc(fmt.Sprintf("POST /%s/auth/signup", prefix), app.signUpHandler)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/auth/signout", prefix),
		app.services.Auth.Access(app.signOutHandler),
	)
}

func (app *Application) signInHandler(w http.ResponseWriter, r *http.Request) {
	var signInDto dtos.SignInDto

	err := httptools.ReadForm(r, &signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := signInDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	user, err := app.services.Auth.SignInWithEmail(r.Context(), &signInDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	sessionCookie, err := app.services.Auth.CreateSession(r.Context(), *user)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.SetCookie(w, sessionCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) signUpHandler(w http.ResponseWriter, r *http.Request) {
	var signUpDto dtos.SignUpDto

	err := httptools.ReadForm(r, &signUpDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	if ok, errs := signUpDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	user, err := app.services.Auth.SignUp(r.Context(), &signUpDto)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	sessionCookie, err := app.services.Auth.CreateSession(r.Context(), *user)
	if err != nil {
		httptools.RedirectWithError(w, r, "/", err)
		return
	}

	http.SetCookie(w, sessionCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *Application) signOutHandler(w http.ResponseWriter, r *http.Request) {
	sessionCookie, _ := r.Cookie("session")

	deleteSessionCookie, err := app.services.Auth.SignOut(
		r.Context(),
		sessionCookie.Value,
	)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, deleteSessionCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
