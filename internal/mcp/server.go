package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/engine"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/files"
)

// Server manages the MCP server lifecycle, exposing marker extraction over
// stdio.
type Server struct {
	cfg       *config.Config
	rootDir   string
	eng       *engine.Engine
	discovery *files.Discovery
	mcp       *server.MCPServer
}

// NewServer creates an MCP server rooted at rootDir.
func NewServer(rootDir string, cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	discovery, err := files.NewDiscovery(rootDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery: %w", err)
	}

	eng := engine.New(cfg)

	mcpServer := server.NewMCPServer(
		"promptgen-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	AddExtractContextTool(mcpServer, eng)
	AddExtractTypesTool(mcpServer, eng)
	AddFindMarkerFilesTool(mcpServer, discovery)

	return &Server{
		cfg:       cfg,
		rootDir:   rootDir,
		eng:       eng,
		discovery: discovery,
		mcp:       mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases server resources.
func (s *Server) Close() {
	s.discovery.Close()
}
