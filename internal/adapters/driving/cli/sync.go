package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise assignment windows from Canvas",
	Long: `Fetches every assignment of the configured Canvas course, keeps those whose
name contains the predicate and none of the blacklisted phrases, and stores
their open and due times under a normalised name.

The assignment type and expected file count are taken from the [resolution]
section or the --type and --files flags. Anything left unset is asked for on
the terminal; end an answer with * to apply it to every remaining assignment.

Flags override the configuration document for this run only.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

// Flags for sync.
var (
	syncCourse      int64
	syncPredicate   string
	syncBlacklist   []string
	syncKind        string
	syncFiles       int
	syncDryRun      bool
	syncInteractive bool
)

func init() {
	syncCmd.Flags().Int64Var(&syncCourse, "course", 0, "Canvas course id (overrides canvas.canvas_course_id)")
	syncCmd.Flags().StringVar(&syncPredicate, "predicate", "", "assignment name predicate")
	syncCmd.Flags().StringSliceVar(&syncBlacklist, "blacklist", nil, "phrases that exclude an assignment")
	syncCmd.Flags().StringVar(&syncKind, "type", "", "assignment type for every assignment (c, cpp, none)")
	syncCmd.Flags().IntVar(&syncFiles, "files", -1, "expected file count for every assignment")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "resolve assignments without storing them")
	syncCmd.Flags().BoolVar(&syncInteractive, "interactive", false, "ask for unset values even when stdin is not a terminal")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	configService, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applySyncFlags(cmd, cfg); err != nil {
		return err
	}
	if err := configService.Validate(cfg); err != nil {
		return err
	}
	if openSync == nil {
		return errors.New("sync service not configured")
	}

	opts := SyncOptions{
		Kind:        domain.AssignmentKind(cfg.Resolution.AssignmentType),
		FileCount:   cfg.Resolution.FileCount,
		Interactive: syncInteractive || stdinIsTerminal(),
		DryRun:      syncDryRun,
		Color:       colorEnabled(),
	}
	syncer, closer, err := openSync(cfg, opts)
	if err != nil {
		return fmt.Errorf("open sync: %w", err)
	}
	defer closeQuietly(closer)

	req := domain.SyncRequest{
		CourseID: cfg.Canvas.CourseID,
		Filter:   cfg.Filter(),
		DryRun:   syncDryRun,
	}
	cmd.Printf("Synchronising course %d...\n", req.CourseID)

	report, err := syncer.Sync(cmd.Context(), req)
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}

// applySyncFlags overlays the flags the operator set onto cfg.
func applySyncFlags(cmd *cobra.Command, cfg *domain.Config) error {
	flags := cmd.Flags()
	if flags.Changed("course") {
		cfg.Canvas.CourseID = syncCourse
	}
	if flags.Changed("predicate") {
		cfg.Canvas.NamePredicate = syncPredicate
	}
	if flags.Changed("blacklist") {
		cfg.Canvas.PhraseBlacklist = syncBlacklist
	}
	if flags.Changed("type") {
		kind, err := domain.ParseAssignmentKind(syncKind)
		if err != nil {
			return fmt.Errorf("--type: %w", err)
		}
		cfg.Resolution.AssignmentType = kind.String()
	}
	if flags.Changed("files") {
		if syncFiles < 0 {
			return fmt.Errorf("--files: %w: must not be negative", domain.ErrInvalidInput)
		}
		cfg.Resolution.FileCount = syncFiles
	}
	return nil
}

func printReport(cmd *cobra.Command, report *domain.SyncReport) {
	cmd.Println()
	if report.DryRun {
		cmd.Println("Dry run, nothing was stored:")
		for i := range report.Assignments {
			a := report.Assignments[i]
			cmd.Printf("  %s (%s, %d files) from %q\n", a.InternalName, a.Kind, a.FileCount, a.OriginalName)
		}
		cmd.Println()
	}

	cmd.Printf("Run %s\n", report.RunID)
	cmd.Printf("  Fetched:  %d\n", report.Fetched)
	cmd.Printf("  Retained: %d\n", report.Retained)
	cmd.Printf("  Stored:   %d\n", report.Stored)
	cmd.Printf("  Failed:   %d\n", report.Failed())

	if report.Failed() > 0 {
		cmd.Println()
		cmd.Println("Failed assignments:")
		for _, f := range report.Failures {
			cmd.Printf("  %s (Canvas id %d): %s\n", f.OriginalName, f.RemoteID, strings.TrimSpace(f.Err.Error()))
		}
	}
}
