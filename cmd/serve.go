package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/leandrowiemesfilho/doc2md/internal/config"
	"github.com/leandrowiemesfilho/doc2md/internal/converter"
	"github.com/leandrowiemesfilho/doc2md/internal/handler"
	"github.com/leandrowiemesfilho/doc2md/internal/router"
	"github.com/leandrowiemesfilho/doc2md/internal/upload"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP conversion service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (yaml, json or env)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(c.Context, cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes())
	log.Printf("Uploads stored in %s (max %d bytes)", store.Dir(), store.MaxBytes())
	convertH := handler.NewConvertHandler(store, converter.ConverterFunc(converter.ConvertFile), cfg.Log.Debug())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(convertH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (environment: %s)", srv.Addr, cfg.Server.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
