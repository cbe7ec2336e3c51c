package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/trainloop/internal/config"
	"github.com/vk/trainloop/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Logs go to errW; outW is reserved for the machine-readable
// progress stream (one episode index per line).
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded,
// validated plan. A plan that fails to load is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		panic(fmt.Errorf("failed to load plan: %w", err))
	}
	logger.Debug("Plan loaded and translated into unified model.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		model:  model,
	}
}

// Model returns the loaded plan model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
