package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/decision"
	"github.com/mizzou-cs-core/assignment-window/internal/adapters/driven/storage/memory"
	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
	"github.com/mizzou-cs-core/assignment-window/internal/core/services"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// fakeSource implements driven.AssignmentSource for testing.
type fakeSource struct {
	assignments []domain.RemoteAssignment
	err         error
	courseIDs   []int64
}

func (f *fakeSource) ListAssignments(_ context.Context, courseID int64) ([]domain.RemoteAssignment, error) {
	f.courseIDs = append(f.courseIDs, courseID)
	if f.err != nil {
		return nil, f.err
	}
	return f.assignments, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// testEnv holds the in-memory services behind the command tree.
type testEnv struct {
	configStore *memory.ConfigStore
	source      *fakeSource
	store       *memory.AssignmentStore
	runs        *memory.SyncRunStore
	logs        *bytes.Buffer

	syncConfig *domain.Config
	syncOpts   SyncOptions
	syncOpened int
	closed     int
}

func validConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.General.InstanceCode = "cs1050-sp25"
	cfg.Paths.SQLitePath = "/tmp/cs1050.db"
	cfg.Canvas.Token = "7~token"
	cfg.Canvas.CourseID = 12345
	cfg.Canvas.NamePredicate = "Lab"
	cfg.Resolution.AssignmentType = "c"
	cfg.Resolution.FileCount = 1
	return &cfg
}

func remote(id int64, name string) domain.RemoteAssignment {
	return domain.RemoteAssignment{ID: id, Name: name}
}

// setupCLI wires the command tree to in-memory services. A nil cfg starts
// without a configuration document.
func setupCLI(t *testing.T, cfg *domain.Config) *testEnv {
	t.Helper()

	env := &testEnv{
		configStore: memory.NewConfigStore(cfg),
		source:      &fakeSource{},
		store:       memory.NewAssignmentStore(),
		runs:        memory.NewSyncRunStore(),
		logs:        new(bytes.Buffer),
	}

	oldConfig, oldSync, oldCatalogue := openConfig, openSync, openCatalogue
	oldStdin, oldStderr := stdinIsTerminal, stderrIsTerminal

	SetServices(
		func(string) driving.ConfigService {
			return services.NewConfigService(env.configStore)
		},
		func(cfg *domain.Config, opts SyncOptions) (driving.AssignmentSync, io.Closer, error) {
			env.syncConfig = cfg
			env.syncOpts = opts
			env.syncOpened++
			orchestrator := services.NewSyncOrchestrator(
				env.source, env.store, env.runs,
				decision.NewAutomatic(opts.Kind, opts.FileCount),
				domain.NewResolution(opts.Kind, opts.FileCount),
				cfg.General.InstanceCode,
			)
			return orchestrator, closerFunc(func() error { env.closed++; return nil }), nil
		},
		func(cfg *domain.Config) (driving.AssignmentCatalogue, io.Closer, error) {
			catalogue := services.NewCatalogueService(env.store, env.runs, cfg.General.InstanceCode)
			return catalogue, closerFunc(func() error { env.closed++; return nil }), nil
		},
	)
	stdinIsTerminal = func() bool { return false }
	stderrIsTerminal = func() bool { return false }
	logger.SetOutput(env.logs)

	t.Cleanup(func() {
		SetServices(oldConfig, oldSync, oldCatalogue)
		stdinIsTerminal, stderrIsTerminal = oldStdin, oldStderr
		logger.SetOutput(io.Discard)
		logger.SetVerbose(false)
	})
	return env
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default, since flag state outlives
// a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
