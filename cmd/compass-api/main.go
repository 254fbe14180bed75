// README: Entry point; loads config, wires the assistant, serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"compass/internal/app"
	"compass/internal/config"
	httptransport "compass/internal/http"
	"compass/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.Build(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("wire services", zap.Error(err))
	}
	defer services.Close()

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Assistant: services.Assistant,
		Stats:     services.Stats,
		Logger:    zl,
	})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	zl.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("llm", cfg.LLM.Provider))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("serve", zap.Error(err))
	}
}
