package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driving"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// defaultConfigFile is looked up in the working directory.
const defaultConfigFile = "gen_assignment_window.toml"

// Persistent flags.
var (
	configPath string
	verbose    bool
	noColor    bool
)

// SyncOptions are the choices a sync run is wired with.
type SyncOptions struct {
	// Kind pre-answers the assignment kind. Empty means ask.
	Kind domain.AssignmentKind

	// FileCount pre-answers the file count. Negative means ask.
	FileCount int

	// Interactive asks an operator for anything not pre-answered.
	Interactive bool

	// DryRun resolves without persisting.
	DryRun bool

	// Color enables coloured prompts.
	Color bool
}

// ConfigFactory opens the configuration document at path.
type ConfigFactory func(path string) driving.ConfigService

// SyncFactory builds a sync service for a validated configuration.
// The returned closer releases the store.
type SyncFactory func(cfg *domain.Config, opts SyncOptions) (driving.AssignmentSync, io.Closer, error)

// CatalogueFactory builds a catalogue over the configured store.
type CatalogueFactory func(cfg *domain.Config) (driving.AssignmentCatalogue, io.Closer, error)

// Service factories, set by SetServices.
var (
	openConfig    ConfigFactory
	openSync      SyncFactory
	openCatalogue CatalogueFactory
)

// Terminal detection, replaced in tests.
var (
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stderrIsTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

var rootCmd = &cobra.Command{
	Use:   "assignment-window",
	Short: "Sync Canvas assignment windows into a grading instance",
	Long: `Fetches the assignments of a Canvas course, keeps the ones matching the
configured name predicate and blacklist, and stores their open and due
times in the grading instance database.

On first run a configuration template is written and the tool exits so it
can be filled in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetColor(colorEnabled())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", defaultConfigFile, "path to the configuration document")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// SetServices registers the factories commands use to open services.
func SetServices(config ConfigFactory, sync SyncFactory, catalogue CatalogueFactory) {
	openConfig = config
	openSync = sync
	openCatalogue = catalogue
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func colorEnabled() bool {
	return !noColor && stderrIsTerminal()
}

// loadConfig opens the configuration document, writing a template when it
// is missing.
func loadConfig() (driving.ConfigService, *domain.Config, error) {
	if openConfig == nil {
		return nil, nil, errors.New("config service not configured")
	}

	configService := openConfig(configPath)
	cfg, err := configService.Ensure()
	if err != nil {
		if errors.Is(err, domain.ErrSetupRequired) {
			logger.Warn("No configuration found, a template was written to %s", configService.Path())
			logger.Warn("Fill it in and run again")
		}
		return nil, nil, err
	}
	return configService, cfg, nil
}

// requireStore checks the keys needed to open the assignment store.
func requireStore(cfg *domain.Config) error {
	switch {
	case cfg.General.InstanceCode == "":
		return fmt.Errorf("%w: general.mucs_instance_code is required", domain.ErrInvalidConfig)
	case cfg.Paths.SQLitePath == "":
		return fmt.Errorf("%w: paths.sqlite3_path is required", domain.ErrInvalidConfig)
	default:
		return nil
	}
}

// closeQuietly closes c, logging any failure.
func closeQuietly(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close store: %v", err)
	}
}
