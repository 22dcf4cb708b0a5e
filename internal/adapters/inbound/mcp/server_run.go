// Package mcp exposes the user directory as Model Context Protocol tools over streamable HTTP.
package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UserDirectoryMCPServer serves the directory tools to MCP clients.
type UserDirectoryMCPServer struct {
	Port             int                `config:"MCP_PORT" default:"8090"`
	Logger           *log.Logger        `resolve:""`
	ListUsersUseCase usecases.ListUsers `resolve:""`
	GetUserUseCase   usecases.GetUser   `resolve:""`
}

// Handler returns the HTTP handler serving the MCP endpoint at /mcp.
func (s UserDirectoryMCPServer) Handler() http.Handler {
	server := s.NewServer()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil))

	return telemetry.Middleware("userdirectory-mcp")(mux)
}

// Run starts the MCP HTTP server.
func (s UserDirectoryMCPServer) Run(ctx context.Context) error {
	svr := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("UserDirectoryMCPServer: Listening on port %d", s.Port)
		errCh <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("UserDirectoryMCPServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MCP server accepts connections.
func (s UserDirectoryMCPServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", s.Port), nil)
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
