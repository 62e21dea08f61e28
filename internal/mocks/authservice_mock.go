package mocks

import (
	"context"
	"net/http"

	"calendar.nationaldaily.com/internal/auth"
	"calendar.nationaldaily.com/internal/constants"
	"calendar.nationaldaily.com/internal/models"
)

func NewMockedAuthService(user models.User) auth.Service {
	return &MockedAuthService{
		user: user,
	}
}

type MockedAuthService struct {
	user models.User
}

func (m *MockedAuthService) inject(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return m.inject(next)
}

func (m *MockedAuthService) AdminAccess(next http.HandlerFunc) http.HandlerFunc {
	return m.inject(next)
}

func (m *MockedAuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return m.inject(next)
}

func (m *MockedAuthService) SignOut(
	_ context.Context,
	_ string,
) (*http.Cookie, error) {
	return nil, nil
}
