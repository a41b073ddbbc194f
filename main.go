package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/backend"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/config"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/logging"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/models"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/query"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/server"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/storage"
	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	transport := flag.String("transport", "stdio", "Transport mode: stdio, http or cli")
	port := flag.String("port", "8081", "HTTP port (only used with --transport http)")
	backendKind := flag.String("backend", cfg.Backend, "Relationship backend: http or export")
	exportDB := flag.String("export-db", cfg.ExportDB, "SQLite export file (only used with --backend export)")
	loadFile := flag.String("load", "", "Load a JSON array of relationships into the export file and exit")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug logging")

	entities := flag.String("entities", "", "cli: comma-separated entity values")
	entitiesTypes := flag.String("entities-types", "", "cli: comma-separated entity types")
	relationships := flag.String("relationships", "", "cli: comma-separated relationship names")
	limit := flag.String("limit", "", "cli: maximum number of relationships (default 20)")
	revoked := flag.String("revoked", "", "cli: true to search revoked relationships")
	verbose := flag.String("verbose", "", "cli: true for extended context")
	flag.Parse()

	cfg.Backend = *backendKind
	cfg.ExportDB = *exportDB
	cfg.Debug = *debug

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *loadFile != "" {
		cfg.Backend = config.BackendExport
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	searcher, closeFn, err := openBackend(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open backend: %v", err)
	}
	defer closeFn()

	if *loadFile != "" {
		n, err := loadExport(ctx, searcher.(*storage.ExportStore), *loadFile)
		if err != nil {
			logger.Fatalf("Failed to load %s: %v", *loadFile, err)
		}
		logger.Infow("Loaded relationships", "count", n, "export_db", cfg.ExportDB)
		return
	}

	switch *transport {
	case "stdio":
		srv := server.New(searcher, logger)
		logger.Infow("Relationships MCP server starting (stdio)", "backend", cfg.Backend)
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	case "http":
		srv := server.New(searcher, logger)
		httpServer := &http.Server{
			Addr:         ":" + *port,
			Handler:      server.HTTPHandler(srv, cfg.BearerToken, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // streamable responses
			IdleTimeout:  120 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			httpServer.Shutdown(shutdownCtx)
		}()
		logger.Infow("Relationships MCP server listening", "addr", httpServer.Addr, "backend", cfg.Backend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	case "cli":
		res, err := tools.Run(ctx, searcher, query.Args{
			Entities:      *entities,
			EntitiesTypes: *entitiesTypes,
			Relationships: *relationships,
			Limit:         *limit,
			Revoked:       *revoked,
			Verbose:       *verbose,
		})
		if err != nil {
			logger.Errorw("automation failed", "automation", tools.AutomationName, "error", err)
			fmt.Fprintf(os.Stderr, "Failed to execute %s automation. Error: %v\n", tools.AutomationName, err)
			os.Exit(1)
		}
		fmt.Print(res.ReadableOutput)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res.ContextOutput())
	default:
		logger.Fatalf("Unknown transport: %s (use stdio, http or cli)", *transport)
	}
}

// openBackend returns the configured searcher and a function releasing it.
func openBackend(cfg config.Config, logger *zap.SugaredLogger) (backend.Searcher, func(), error) {
	switch cfg.Backend {
	case config.BackendExport:
		store, err := storage.OpenExport(cfg.ExportDB)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		opts := cfg.ClientOptions()
		opts.Logger = logger
		client, err := backend.NewClient(opts)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}

func loadExport(ctx context.Context, store *storage.ExportStore, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var rels []models.Relationship
	if err := json.Unmarshal(data, &rels); err != nil {
		return 0, fmt.Errorf("decode relationships: %w", err)
	}
	return store.Load(ctx, rels)
}
