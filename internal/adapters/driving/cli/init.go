package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration template",
	Long: `Writes the configuration document with any values given as flags; every
other key is left empty for editing. An existing document is only replaced
with --force.

Examples:
  assignment-window init
  assignment-window init --instance cs1050-sp25 --course 12345 --predicate Lab`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Flags for init.
var (
	initInstance   string
	initSQLitePath string
	initToken      string
	initBaseURL    string
	initCourse     int64
	initPredicate  string
	initBlacklist  []string
	initKind       string
	initFiles      int
	initForce      bool
)

func init() {
	initCmd.Flags().StringVar(&initInstance, "instance", "", "grading instance code")
	initCmd.Flags().StringVar(&initSQLitePath, "sqlite-path", "", "path to the grading instance database")
	initCmd.Flags().StringVar(&initToken, "token", "", "Canvas API access token")
	initCmd.Flags().StringVar(&initBaseURL, "base-url", domain.DefaultCanvasBaseURL, "Canvas API root")
	initCmd.Flags().Int64Var(&initCourse, "course", 0, "Canvas course id")
	initCmd.Flags().StringVar(&initPredicate, "predicate", "", "assignment name predicate")
	initCmd.Flags().StringSliceVar(&initBlacklist, "blacklist", nil, "phrases that exclude an assignment")
	initCmd.Flags().StringVar(&initKind, "type", "", "assignment type for every assignment (c, cpp, none)")
	initCmd.Flags().IntVar(&initFiles, "files", -1, "expected file count for every assignment")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing document")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if openConfig == nil {
		return errors.New("config service not configured")
	}

	cfg := domain.Config{
		General: domain.GeneralConfig{InstanceCode: initInstance},
		Paths:   domain.PathsConfig{SQLitePath: initSQLitePath},
		Canvas: domain.CanvasConfig{
			Token:           initToken,
			BaseURL:         initBaseURL,
			CourseID:        initCourse,
			NamePredicate:   initPredicate,
			PhraseBlacklist: initBlacklist,
		},
		Resolution: domain.ResolutionConfig{FileCount: initFiles},
	}
	if initKind != "" {
		kind, err := domain.ParseAssignmentKind(initKind)
		if err != nil {
			return fmt.Errorf("--type: %w", err)
		}
		cfg.Resolution.AssignmentType = kind.String()
	}

	configService := openConfig(configPath)
	if err := configService.Materialize(cfg, initForce); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	cmd.Printf("Wrote %s\n", configService.Path())
	return nil
}
