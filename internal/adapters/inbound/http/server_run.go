package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/presentation"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/usecases"
	"github.com/rs/cors"
)

// UserDirectoryServer is the REST API HTTP server for the user directory.
type UserDirectoryServer struct {
	Port             int                          `config:"HTTP_PORT" default:"8080"`
	RateLimitRPS     int                          `config:"HTTP_RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst   int                          `config:"HTTP_RATE_LIMIT_BURST" default:"40"`
	RateLimitIdleTTL time.Duration                `config:"HTTP_RATE_LIMIT_IDLE_TTL" default:"15m"`
	TrustXFF         bool                         `config:"HTTP_RATE_LIMIT_TRUST_XFF" default:"false"`
	Logger           *log.Logger                  `resolve:""`
	ListUsersUseCase usecases.ListUsers           `resolve:""`
	GetUserUseCase   usecases.GetUser             `resolve:""`
	UsersView        *presentation.UsersListModel `resolve:""`
	Clock            domain.CurrentTimeProvider   `resolve:""`
}

// Handler builds the routes of the server wrapped in its middleware chain.
func (api UserDirectoryServer) Handler() http.Handler {
	return api.handler(api.newLimiterStore())
}

func (api UserDirectoryServer) newLimiterStore() *LimiterStore {
	return NewLimiterStore(
		float64(api.RateLimitRPS),
		api.RateLimitBurst,
		WithIdleTTL(api.RateLimitIdleTTL),
	)
}

func (api UserDirectoryServer) handler(limiters *LimiterStore) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Healthz)
	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	mux.HandleFunc("GET /api/v1/users", api.ListUsers)
	mux.HandleFunc("GET /api/v1/users/{id}", api.GetUser)

	mux.HandleFunc("GET /api/v1/view/users", api.GetUsersView)
	mux.HandleFunc("PUT /api/v1/view/users/search", api.SetUsersViewSearch)
	mux.HandleFunc("POST /api/v1/view/users/refresh", api.RefreshUsersView)
	mux.HandleFunc("GET /api/v1/view/users/{id}", api.GetUserDetailView)

	var h http.Handler = mux
	h = telemetry.Middleware("userdirectory-api")(h)
	h = RateLimit(limiters, api.TrustXFF, api.Logger)(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the UserDirectoryServer.
func (api UserDirectoryServer) Run(ctx context.Context) error {
	limiters := api.newLimiterStore()
	limiters.StartJanitor(ctx)

	s := &http.Server{
		Handler:           api.handler(limiters),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("UserDirectoryServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("UserDirectoryServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("UserDirectoryServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the UserDirectoryServer is ready by performing a health check.
func (api UserDirectoryServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports the server as healthy while it is serving requests.
func (api UserDirectoryServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{Status: "ok"})
}
