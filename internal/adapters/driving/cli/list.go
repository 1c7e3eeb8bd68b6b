package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assignment windows",
	Long:  `Prints the assignment windows stored for the configured grading instance, ordered by due date.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireStore(cfg); err != nil {
		return err
	}
	if openCatalogue == nil {
		return errors.New("catalogue service not configured")
	}

	catalogue, closer, err := openCatalogue(cfg)
	if err != nil {
		return fmt.Errorf("open catalogue: %w", err)
	}
	defer closeQuietly(closer)

	ctx := cmd.Context()
	assignments, err := catalogue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}

	if len(assignments) == 0 {
		cmd.Printf("No assignments stored for %s.\n", cfg.General.InstanceCode)
		cmd.Println("Fetch them with: assignment-window sync")
		return nil
	}

	cmd.Println(assignmentTable(assignments))

	run, err := catalogue.LastRun(ctx)
	switch {
	case err == nil:
		cmd.Printf("Last sync %s: %d stored, %d failed\n",
			run.FinishedAt.Local().Format(time.DateTime), run.Stored, run.Failed)
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("failed to read last run: %w", err)
	}
	return nil
}

func assignmentTable(assignments []domain.StoredAssignment) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "CANVAS ID", "OPENS", "DUE", "TYPE", "FILES")
	for i := range assignments {
		a := assignments[i]
		t.Row(
			a.InternalName,
			strconv.FormatInt(a.RemoteID, 10),
			displayTime(a.OpenAt),
			displayTime(a.DueAt),
			a.Kind.String(),
			strconv.Itoa(a.FileCount),
		)
	}
	return t.String()
}

func displayTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
