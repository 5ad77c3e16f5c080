package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/config"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/logger"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/server"
	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "linkedin-mcp:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	transport := flag.String("transport", cfg.Server.Transport, "Transport mode: stdio or http")
	port := flag.String("port", cfg.Server.Port, "HTTP port (only used with --transport http)")
	dataDir := flag.String("data-dir", cfg.Storage.DataDir, "Directory holding the SQLite database")
	flag.Parse()
	cfg.Storage.DataDir = *dataDir

	log := logger.NewZapLogger(cfg.Log.Env)
	defer log.Sync()

	dbPath := cfg.DBPath()
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Error("failed to open profile store", err, zap.String("path", dbPath))
		return err
	}
	defer store.Close()

	srv := server.New(store, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch *transport {
	case "stdio":
		abs, _ := filepath.Abs(dbPath)
		log.Info("LinkedIn MCP server running on stdio", zap.String("db", abs))
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server: %w", err)
		}
	case "http":
		addr := ":" + *port
		handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
			return srv
		}, nil)
		httpSrv := &http.Server{Addr: addr, Handler: handler}
		go func() {
			<-ctx.Done()
			httpSrv.Shutdown(context.Background())
		}()
		log.Info("LinkedIn MCP server listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	default:
		return fmt.Errorf("unknown transport: %s (use stdio or http)", *transport)
	}

	log.Info("shutting down LinkedIn MCP server")
	return nil
}
