package services

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	errortools "github.com/xdoubleu/essentia/v2/pkg/errortools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"github.com/xhit/go-str2duration/v2"

	"calendar.nationaldaily.com/cmd/calendar/internal/dtos"
	"calendar.nationaldaily.com/cmd/calendar/internal/repositories"
	"calendar.nationaldaily.com/internal/constants"
	"calendar.nationaldaily.com/internal/models"
)

const sessionCookieName = "session"

// These surface directly in the sign-in form, hence the sentence casing.
//
//nolint:staticcheck,stylecheck //user-facing messages
var (
	errInvalidCredentials = errors.New("Invalid email or password.")
	errDuplicateEmail     = errors.New("Account with this email already exists.")
)

// AuthService checks credentials against the locally stored account list and
// tracks signed-in browsers through an opaque session cookie.
type AuthService struct {
	users            *repositories.UserRepository
	sessions         *repositories.SessionRepository
	tpl              *template.Template
	useSecureCookies bool
	sessionExpiry    string

	mu       sync.Mutex
	accounts []models.User
}

// Load restores the account list, seeding the default accounts on first run.
// Sessions that expired while the server was down are swept here.
func (service *AuthService) Load(ctx context.Context) error {
	if err := service.sessions.DeleteExpired(ctx); err != nil {
		return err
	}

	saved, found, err := service.users.Load(ctx)
	if err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	if found {
		service.accounts = saved
		return nil
	}

	service.accounts = models.DefaultUsers()
	return service.users.Save(ctx, service.accounts)
}

func (service *AuthService) SignInWithEmail(
	_ context.Context,
	signInDto *dtos.SignInDto,
) (*models.User, error) {
	service.mu.Lock()
	var match *models.User
	for _, account := range service.accounts {
		if account.EmailEquals(signInDto.Email) &&
			account.Password == signInDto.Password {
			match = &account
			break
		}
	}
	service.mu.Unlock()

	if match == nil {
		return nil, errortools.NewUnauthorizedError(errInvalidCredentials)
	}

	return match, nil
}

func (service *AuthService) SignUp(
	ctx context.Context,
	signUpDto *dtos.SignUpDto,
) (*models.User, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	for _, account := range service.accounts {
		if account.EmailEquals(signUpDto.Email) {
			return nil, errDuplicateEmail
		}
	}

	user := models.User{
		Name:     signUpDto.Name,
		Email:    signUpDto.Email,
		Role:     models.RoleEditor,
		Password: signUpDto.Password,
	}

	service.accounts = append(service.accounts, user)
	if err := service.users.Save(ctx, service.accounts); err != nil {
		return nil, err
	}

	return &user, nil
}

func (service *AuthService) CreateSession(
	ctx context.Context,
	user models.User,
) (*http.Cookie, error) {
	ttl, err := str2duration.ParseDuration(service.sessionExpiry)
	if err != nil {
		return nil, err
	}

	session := repositories.Session{
		Token:     uuid.NewString(),
		Email:     user.Email,
		ExpiresAt: time.Now().Add(ttl),
	}

	if err = service.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	cookie := http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   service.useSecureCookies,
		Path:     "/",
	}

	return &cookie, nil
}

func (service *AuthService) GetUser(
	ctx context.Context,
	sessionToken string,
) (*models.User, error) {
	session, err := service.sessions.Get(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = service.sessions.Delete(ctx, sessionToken)
		return nil, errortools.NewUnauthorizedError(errors.New("session expired"))
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	for _, account := range service.accounts {
		if account.EmailEquals(session.Email) {
			return &account, nil
		}
	}

	return nil, errortools.NewUnauthorizedError(errors.New("unknown account"))
}

func (service *AuthService) SignOut(
	ctx context.Context,
	sessionToken string,
) (*http.Cookie, error) {
	if err := service.sessions.Delete(ctx, sessionToken); err != nil {
		return nil, err
	}

	deleteSessionCookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Path:     "/",
	}

	return deleteSessionCookie, nil
}

func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("no session in cookies")))
			return
		}

		user, err := service.GetUser(r.Context(), tokenCookie.Value)
		if err != nil {
			httptools.HandleError(w, r, err)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) AdminAccess(next http.HandlerFunc) http.HandlerFunc {
	return service.Access(func(w http.ResponseWriter, r *http.Request) {
		user := service.getContextUser(r.Context())
		if user == nil || !user.IsAdmin() {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("admin access required")))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := service.getCurrentUser(r)

		if user == nil {
			tpltools.RenderWithPanic(service.tpl, w, "sign-in.html", nil)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next(w, r)
	})
}

func (service *AuthService) getCurrentUser(r *http.Request) *models.User {
	sessionToken, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	user, err := service.GetUser(r.Context(), sessionToken.Value)
	if err != nil {
		return nil
	}

	return user
}

func (service *AuthService) getContextUser(ctx context.Context) *models.User {
	value := ctx.Value(constants.UserContextKey)
	if value == nil {
		return nil
	}

	user, ok := value.(models.User)
	if !ok {
		return nil
	}

	return &user
}

func (service *AuthService) contextSetUser(
	ctx context.Context,
	user models.User,
) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			Email: user.Email,
		})
	}

	return context.WithValue(ctx, constants.UserContextKey, user)
}
