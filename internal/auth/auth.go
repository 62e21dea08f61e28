package auth

import (
	"context"
	"net/http"
)

type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
	AdminAccess(next http.HandlerFunc) http.HandlerFunc
	TemplateAccess(next http.HandlerFunc) http.HandlerFunc
	SignOut(ctx context.Context, sessionToken string) (*http.Cookie, error)
}
