package misc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/hamzfitness/internal/auth"
	"github.com/2beens/hamzfitness/internal/middleware"
	"github.com/2beens/hamzfitness/internal/telemetry/metrics"
	"github.com/2beens/hamzfitness/internal/telemetry/tracing"
	"github.com/2beens/hamzfitness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler serves the root/version endpoints and the admin login/logout.
type Handler struct {
	versionInfo string
	authService *auth.Service
}

func NewHandler(
	versionInfo string,
	authService *auth.Service,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		authService: authService,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the /login and /logout endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin, metricsManager))
	loginSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials auth.Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		credentials = auth.Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrWrongPassword) {
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-HAMZ-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Printf("logout for [%s] success", authToken)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
