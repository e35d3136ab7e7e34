package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/coreos/go-oidc"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const OIDCURL = "https://accounts.google.com"

var ProfileScopes = []string{
	"openid",
	"email",
	"profile",
}

type Server struct {
	Conn          *pgxpool.Pool
	Queries       *Queries
	Cookies       *sessions.CookieStore
	OAuthConfig   *oauth2.Config
	TokenVerifier *oidc.IDTokenVerifier
	Mail          *MailWorker
	FileBackend   FileBackend
	Runtime       RuntimeInfo
	BuildKey      string
	Config        Config
}

type HTTPConfig struct {
	URL                      string
	ReadTimeoutSeconds       time.Duration
	ReadHeaderTimeoutSeconds time.Duration
	WriteTimeoutSeconds      time.Duration
	IdleTimeoutSeconds       time.Duration
	StaticDir                string
}

type RuntimeInfo struct {
	TimeStarted time.Time
}

type Middleware = func(http.Handler) http.Handler

func (s *Server) Transaction(ctx context.Context, f func(ctx context.Context, q *Queries) error) error {
	tx, err := s.Conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("starting database transaction: %w", err)
	}
	q := s.Queries.WithTx(tx)
	err = f(ctx, q)
	if err == nil {
		err = tx.Commit(ctx)
	} else {
		tx.Rollback(ctx)
	}
	return err
}

var ErrUnauthorized = errors.New("unauthorized")
var ErrNotFound = errors.New("not found")
var ErrInternalServerError = errors.New("internal server error")

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	var conflict *StateConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func startServer(ctx context.Context, conn *pgxpool.Pool, queries *Queries, mail *MailWorker, backend FileBackend, config Config, buildKey string) error {
	sessionKey, err := os.ReadFile(config.Auth.SessionKeyLocation)
	if err != nil {
		return err
	}

	c, err := loadCreds(config.Auth.OAuthCredentialsLocation)
	if err != nil {
		return err
	}

	provider, err := oidc.NewProvider(ctx, OIDCURL)
	if err != nil {
		return err
	}

	cookies := sessions.NewCookieStore(sessionKey)
	cookies.Options.HttpOnly = true
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.Secure = true

	redirectURI := config.Auth.OAuthRedirectURI
	if redirectURI == "" {
		redirectURI = c.Web.RedirectURIs[0]
	}
	log.Info().Str("redirect_uri", redirectURI).Msg("oauth redirect configured")

	server := &Server{
		Conn:    conn,
		Queries: queries,
		Cookies: cookies,
		Mail:    mail,
		OAuthConfig: &oauth2.Config{
			ClientID:     c.Web.ClientID,
			ClientSecret: c.Web.ClientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       ProfileScopes,
		},
		TokenVerifier: provider.Verifier(&oidc.Config{
			ClientID: c.Web.ClientID,
		}),
		Runtime: RuntimeInfo{
			TimeStarted: time.Now(),
		},
		FileBackend: backend,
		BuildKey:    buildKey,
		Config:      config,
	}

	mux := http.NewServeMux()

	// Set up auth middlewares
	requiresLogin := []Middleware{server.requireLogin, withLogging, server.withFeedbackFromRedirects}

	loggedInHandler := func(handler http.HandlerFunc, cap Capability) http.Handler {
		requirements := slices.Clone(requiresLogin)
		requirements = append(requirements, server.requireCapability(cap))
		return chainf(handler, requirements...)
	}

	//// PUBLIC
	// Pages
	mux.Handle("GET /adoptable", chainf(server.adoptableHandler))
	mux.Handle("GET /adoptable/{animal}", chainf(server.adoptableAnimalHandler))
	// Static content
	staticDir := fmt.Sprintf("/static/%s/", buildKey)
	mux.Handle("GET "+staticDir, http.StripPrefix(staticDir, http.FileServer(http.Dir(config.HTTP.StaticDir))))
	// Photos are linked from the public adoptable pages
	mux.Handle("GET /photo/{id}/{filename}", chainf(server.photoHandler))
	// Operational endpoints
	mux.Handle("GET /healthz", chainf(server.healthzHandler))
	mux.Handle("GET /metrics", promhttp.Handler())

	//// LOGIN AND ACCOUNTS
	mux.Handle("GET /login", chainf(server.loginPageHandler))
	mux.Handle("POST /login", chainf(server.passwordLoginHandler))
	mux.Handle("GET /login/google", chainf(server.googleLoginHandler))
	mux.Handle("GET /oauth2/callback", chainf(server.callbackHandler))
	mux.Handle("POST /oauth2/callback", chainf(server.callbackHandler))
	mux.Handle("GET /AuthLogOut", chainf(server.AuthLogOutHandler))
	mux.Handle("POST /AuthLogOut", chainf(server.AuthLogOutHandler))
	mux.Handle("GET /register", chainf(server.registerPageHandler))
	mux.Handle("POST /register", chainf(server.registerHandler))
	mux.Handle("GET /verify-email", chainf(server.verifyEmailHandler))
	mux.Handle("GET /forgot-password", chainf(server.forgotPasswordPageHandler))
	mux.Handle("POST /forgot-password", chainf(server.forgotPasswordHandler))
	mux.Handle("GET /reset-password", chainf(server.resetPasswordPageHandler))
	mux.Handle("POST /reset-password", chainf(server.resetPasswordHandler))

	//// LOGGED-IN USER
	// Pages
	mux.Handle("GET /{$}", chainf(server.dashboardHandler, requiresLogin...))
	mux.Handle("GET /access", chainf(server.accessHandler, requiresLogin...))
	mux.Handle("GET /applications", loggedInHandler(server.ownApplicationsHandler, CapViewOwnApplications))
	// Forms
	mux.Handle("POST /animal/{animal}/apply", loggedInHandler(server.submitApplicationHandler, CapSubmitApplication))
	mux.Handle("POST /preferences", loggedInHandler(server.postPreferencesHandler, CapSetOwnPreferences))

	//// VOLUNTEER
	// Pages
	mux.Handle("GET /animal/{animal}", loggedInHandler(server.getAnimalHandler, CapViewAnimal))
	mux.Handle("GET /animals", loggedInHandler(server.animalsHandler, CapViewAnimal))
	mux.Handle("GET /tasks", loggedInHandler(server.tasksHandler, CapViewTasks))
	// Forms
	mux.Handle("POST /task/{task}/complete", loggedInHandler(server.completeTaskHandler, CapCompleteTask))

	//// STAFF
	// Pages
	mux.Handle("GET /intake", loggedInHandler(server.intakePageHandler, CapAnimalIntake))
	mux.Handle("GET /applications/pending", loggedInHandler(server.pendingApplicationsHandler, CapManageApplications))
	mux.Handle("GET /animal/{animal}/outcome", loggedInHandler(server.outcomePageHandler, CapManageOutcomes))
	mux.Handle("GET /species", loggedInHandler(server.getSpeciesHandler, CapManageSpecies))
	mux.Handle("GET /users", loggedInHandler(server.userAdminHandler, CapViewAllUsers))
	// Forms
	mux.Handle("POST /intake", loggedInHandler(server.postIntakeHandler, CapAnimalIntake))
	mux.Handle("POST /animal/{animal}/update", loggedInHandler(server.updateAnimalHandler, CapAnimalUpdate))
	mux.Handle("POST /animal/{animal}/reintake", loggedInHandler(server.reintakeHandler, CapAnimalReintake))
	mux.Handle("POST /animal/{animal}/relist", loggedInHandler(server.relistHandler, CapAnimalRelist))
	mux.Handle("POST /animal/{animal}/photo", loggedInHandler(server.uploadPhotoHandler, CapUploadPhoto))
	mux.Handle("POST /animal/{animal}/outcome", loggedInHandler(server.recordOutcomeHandler, CapManageOutcomes))
	mux.Handle("POST /application/{application}/approve", loggedInHandler(server.approveApplicationHandler, CapManageApplications))
	mux.Handle("POST /application/{application}/reject", loggedInHandler(server.rejectApplicationHandler, CapManageApplications))
	mux.Handle("POST /outcome/{outcome}/set-note", loggedInHandler(server.setOutcomeNoteHandler, CapManageOutcomes))
	mux.Handle("POST /tasks", loggedInHandler(server.postTaskHandler, CapManageTasks))
	mux.Handle("POST /task/{task}/assign", loggedInHandler(server.assignTaskHandler, CapManageTasks))
	// Ajax
	mux.Handle("POST /species", loggedInHandler(server.postSpeciesHandler, CapManageSpecies))
	mux.Handle("PUT /species", loggedInHandler(server.putSpeciesHandler, CapManageSpecies))
	mux.Handle("POST /breeds", loggedInHandler(server.postBreedHandler, CapManageSpecies))

	//// ADMIN
	// Pages
	mux.Handle("GET /admin", loggedInHandler(server.adminRootHandler, CapViewAdminTools))
	mux.Handle("GET /user/{user}/confirm-scrub", loggedInHandler(server.userConfirmScrubHandler, CapDeleteUsers))
	mux.Handle("GET /debug", loggedInHandler(server.debugHandler, CapDebug))
	// Forms
	mux.Handle("POST /user/{user}/access-level", loggedInHandler(server.setAccessLevelHandler, CapManageRoles))
	mux.Handle("POST /user/{user}/scrub", loggedInHandler(server.userDoScrubHandler, CapDeleteUsers))
	mux.Handle("POST /invite", loggedInHandler(server.inviteHandler, CapInviteUsers))
	mux.Handle("POST /invite/{id}/delete", loggedInHandler(server.inviteDeleteHandler, CapInviteUsers))

	//// FALLBACK
	// Pages
	mux.Handle("GET /", chainf(server.fourOhFourHandler, requiresLogin...))
	mux.Handle("POST /", chainf(server.fourOhFourHandler, requiresLogin...))

	go func() {
		handler := chain(mux, withRecover, withMetrics)
		srv := &http.Server{
			Addr:              config.HTTP.URL,
			Handler:           handler,
			ReadTimeout:       config.HTTP.ReadTimeoutSeconds * time.Second,
			ReadHeaderTimeout: config.HTTP.ReadHeaderTimeoutSeconds * time.Second,
			WriteTimeout:      config.HTTP.WriteTimeoutSeconds * time.Second,
			IdleTimeout:       config.HTTP.IdleTimeoutSeconds * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil {
			panic(err)
		}
	}()

	return nil
}

func (server *Server) healthzHandler(w http.ResponseWriter, r *http.Request) {
	if err := server.Conn.Ping(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (server *Server) getQueryValue(r *http.Request, field string) (string, error) {
	q := r.URL.Query()
	values, ok := q[field]
	if !ok {
		return "", fmt.Errorf("no such value: '%s'", field)
	}
	if len(values) != 1 {
		return "", fmt.Errorf("%d values named '%s", len(values), field)
	}
	return values[0], nil
}

func (server *Server) getFormValues(r *http.Request, fields ...string) (map[string]string, error) {
	return SliceToMapErr(fields, func(_ int, field string) (string, string, error) {
		v, err := server.getFormValue(r, field)
		return field, v, err
	})
}

func (server *Server) getOptionalFormValues(r *http.Request, fields ...string) map[string]string {
	return SliceToMap(fields, func(field string) (string, string) {
		v, _ := server.getFormValue(r, field)
		return field, v
	})
}

func (server *Server) getFormID(r *http.Request, field string) (int32, error) {
	vStr, err := server.getFormValue(r, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(vStr, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (server *Server) getFormMultiValue(r *http.Request, field string) ([]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	values, ok := r.Form[field]
	if !ok {
		return nil, fmt.Errorf("missing form value '%s'", field)
	}
	return values, nil
}

func (server *Server) getFormValue(r *http.Request, field string) (string, error) {
	values, err := server.getFormMultiValue(r, field)
	if err != nil {
		return "", err
	}
	if len(values) != 1 {
		return "", fmt.Errorf("expect 1 form value for '%s', got %d", field, len(values))
	}
	return values[0], nil
}

func (server *Server) getPathID(r *http.Request, field string) (int32, error) {
	vStr := r.PathValue(field)
	v, err := strconv.ParseInt(vStr, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (server *Server) getPathValue(r *http.Request, field string) (string, error) {
	v := r.PathValue(field)
	var err error
	if v == "" {
		err = fmt.Errorf("no such path value: '%s'", field)
	}
	return v, err
}

func (server *Server) getCheckboxValue(r *http.Request, field string) bool {
	v, err := server.getFormValue(r, field)
	return err == nil && v == "on"
}
