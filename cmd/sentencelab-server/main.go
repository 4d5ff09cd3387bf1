package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go"

	"github.com/at-ishikawa/sentencelab/internal/bootstrap"
	"github.com/at-ishikawa/sentencelab/internal/config"
	"github.com/at-ishikawa/sentencelab/internal/database"
	"github.com/at-ishikawa/sentencelab/internal/generator"
	"github.com/at-ishikawa/sentencelab/internal/sentence"
	"github.com/at-ishikawa/sentencelab/internal/server"
	"github.com/at-ishikawa/sentencelab/internal/tag"
	"github.com/at-ishikawa/sentencelab/internal/template"
	"github.com/at-ishikawa/sentencelab/internal/vocabulary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// The database may still be starting up alongside the server.
	if err := retry.Do(
		db.Ping,
		retry.Attempts(10),
		retry.Delay(time.Second),
	); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := database.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	tagRepo := tag.NewDBRepository(db)
	vocabRepo := vocabulary.NewDBRepository(db)
	templateRepo := template.NewDBRepository(db)
	sentenceRepo := sentence.NewDBRepository(db)
	engine := generator.New(db, tagRepo, templateRepo, vocabRepo, sentenceRepo, nil)

	srv := server.New(engine, tagRepo, vocabRepo, templateRepo, sentenceRepo, cfg.Server.CORS)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	app := bootstrap.New(bootstrap.WithShutdownTimeout(10 * time.Second))
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		return httpServer.Shutdown(ctx)
	})

	return app.Run(context.Background(), func(ctx context.Context) error {
		slog.Info("starting server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(os.Getenv("SENTENCELAB_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("create config loader: %w", err)
	}
	return loader.Load()
}
