// Package service hosts the MCP server for game synthesis tools.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gameforge/internal/bridge"
	"github.com/louisbranch/gameforge/internal/catalog"
	"github.com/louisbranch/gameforge/internal/gamestorage"
	"github.com/louisbranch/gameforge/internal/services/mcp/domain"
	"github.com/louisbranch/gameforge/internal/synth"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "gameforge MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the HTTP listen address for TransportHTTP. Defaults to
	// localhost:8081 so the server is not exposed beyond the local host
	// without an explicit opt-in.
	HTTPAddr string
}

// Deps carries the capabilities the tool handlers need. Provider and Store
// are optional: without a provider only structured specifications are
// accepted, and without a store nothing is cached.
type Deps struct {
	Synthesizer *synth.Synthesizer
	Provider    bridge.SpecProvider
	Store       gamestorage.Store
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with all game synthesis tools
// registered.
func New(deps Deps) (*Server, error) {
	if deps.Synthesizer == nil {
		deps.Synthesizer = synth.New(catalog.New(), synth.Options{})
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.ProjectCreateTool(), domain.ProjectCreateHandler(deps.Synthesizer, deps.Provider, deps.Store))
	mcp.AddTool(mcpServer, domain.ProjectEmitTool(), domain.ProjectEmitHandler(deps.Synthesizer, deps.Provider, deps.Store))
	mcp.AddTool(mcpServer, domain.OptimizeTool(), domain.OptimizeHandler(deps.Store))

	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint for MCP and blocks until context
// cancellation. It is transport-agnostic so startup can choose stdio for
// local tools and HTTP for remote integrations.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	server, err := New(deps)
	if err != nil {
		return err
	}

	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio:
		return server.serveStdio(ctx)
	case TransportHTTP:
		return server.serveHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) serveStdio(ctx context.Context) error {
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// serveHTTP serves MCP over the SDK's streamable HTTP handler and shuts the
// listener down when the context ends.
func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = "localhost:8081"
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	log.Printf("mcp http transport listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP http: %w", err)
	}
}
