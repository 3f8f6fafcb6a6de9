// Package mcp exposes scan, synthesis, and drift results to coding agents
// over the Model Context Protocol.
package mcp

import (
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/driftlens/driftlens/pkg/mcplog"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/store"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server, exposing scan and drift tools.
//
// The store is optional; without one, results from the most recent
// scan_project call are served from memory only. The tool-call logger is
// optional as well, a nil logger disables call logging.
type Server struct {
	mcpServer *server.MCPServer
	scanner   *scanner.Scanner
	store     *store.Store
	logger    *mcplog.Logger
	log       *slog.Logger

	mu   sync.Mutex
	last *store.ScanRecord // most recent in-process scan
}

// NewServer creates an MCP server backed by the given scanner and an
// optional store and tool-call logger.
func NewServer(sc *scanner.Scanner, st *store.Store, toolLog *mcplog.Logger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{scanner: sc, store: st, logger: toolLog, log: log}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("driftlens", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: scanProjectTool(), Handler: s.handleScanProject},
		server.ServerTool{Tool: getSignalStatsTool(), Handler: s.handleGetSignalStats},
		server.ServerTool{Tool: getTokensTool(), Handler: s.handleGetTokens},
		server.ServerTool{Tool: getDriftGroupsTool(), Handler: s.handleGetDriftGroups},
		server.ServerTool{Tool: suggestFixTool(), Handler: s.handleSuggestFix},
		server.ServerTool{Tool: listScansTool(), Handler: s.handleListScans},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
