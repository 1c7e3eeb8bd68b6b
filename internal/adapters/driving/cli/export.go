package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored assignment windows as CSV",
	Long: `Writes the stored assignment windows of the configured grading instance as
CSV, to standard output or to the file given with --output.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
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

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, ferr := os.Create(exportOutput)
		if ferr != nil {
			return fmt.Errorf("create %s: %w", exportOutput, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", exportOutput, cerr)
			}
		}()
		w = f
	}

	if err := catalogue.ExportCSV(cmd.Context(), w); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if exportOutput != "" {
		cmd.PrintErrf("Wrote %s\n", exportOutput)
	}
	return nil
}
