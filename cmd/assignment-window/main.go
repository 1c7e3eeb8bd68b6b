// Command assignment-window syncs Canvas assignment windows into the
// SQLite database of a grading instance.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/canvas"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/config/file"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/decision"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/storage/memory"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/storage/sqlite"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driving/cli"
	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
	"github.com/mizzou-cs-core/assignment-window/internal/core/services"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitSetupRequired = 2
)

func main() {
	cli.SetVersion(version)
	cli.SetServices(openConfig, openSync, openCatalogue)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil && !errors.Is(err, domain.ErrSetupRequired) {
		logger.Error("%v", err)
		if hint := fetchHint(err); hint != "" {
			logger.Warn("%s", hint)
		}
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrSetupRequired):
		return exitSetupRequired
	default:
		return exitFailure
	}
}

// fetchHint suggests which config key to check after a Canvas failure.
func fetchHint(err error) string {
	switch {
	case canvas.IsUnauthorized(err):
		return "Canvas rejected the token, check canvas.canvas_token"
	case canvas.IsRateLimited(err):
		return "Canvas is throttling requests, wait a few minutes and run sync again"
	case canvas.IsForbidden(err):
		return "the token has no access to this course, check canvas.canvas_course_id"
	case canvas.IsNotFound(err):
		return "course not found, check canvas.canvas_course_id and canvas.canvas_base_url"
	default:
		return ""
	}
}

func openConfig(path string) driving.ConfigService {
	return services.NewConfigService(file.NewConfigStore(path))
}

// openSync wires the Canvas client, the store and the decision source.
// Dry runs write to memory so the database file is never touched.
func openSync(cfg *domain.Config, opts cli.SyncOptions) (driving.AssignmentSync, io.Closer, error) {
	client, err := canvas.NewClient(context.Background(), cfg.Canvas.BaseURL, cfg.Canvas.Token)
	if err != nil {
		return nil, nil, err
	}

	var decisions driven.DecisionSource
	if opts.Interactive {
		interactive := decision.NewInteractive(os.Stdin, os.Stderr)
		interactive.SetColor(opts.Color)
		decisions = interactive
	} else {
		decisions = decision.NewAutomatic(opts.Kind, opts.FileCount)
	}
	seed := domain.NewResolution(opts.Kind, opts.FileCount)

	if opts.DryRun {
		orchestrator := services.NewSyncOrchestrator(
			client, memory.NewAssignmentStore(), memory.NewSyncRunStore(),
			decisions, seed, cfg.General.InstanceCode)
		return orchestrator, io.NopCloser(nil), nil
	}

	store, err := sqlite.NewStore(cfg.Paths.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	orchestrator := services.NewSyncOrchestrator(
		client, store.AssignmentStore(), store.SyncRunStore(),
		decisions, seed, cfg.General.InstanceCode)
	return orchestrator, store, nil
}

func openCatalogue(cfg *domain.Config) (driving.AssignmentCatalogue, io.Closer, error) {
	store, err := sqlite.NewStore(cfg.Paths.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	catalogue := services.NewCatalogueService(store.AssignmentStore(), store.SyncRunStore(), cfg.General.InstanceCode)
	return catalogue, store, nil
}
