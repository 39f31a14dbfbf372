package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kamilaomar/moodtracker/backend/internal/analysis"
	"github.com/kamilaomar/moodtracker/backend/internal/models"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse a task log from a JSON file",
	Long: `Read a JSON array of tasks and print the analysis report.
Use --file - to read from stdin.`,
	RunE: runAnalyze,
}

var (
	tasksFile   string
	catalogFile string
)

func init() {
	analyzeCmd.Flags().StringVarP(&tasksFile, "file", "f", "", "JSON file with the task list (- for stdin)")
	analyzeCmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog overriding the built-in moods and exercises")
	_ = analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd.InOrStdin(), tasksFile)
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("failed to decode tasks: %w", err)
	}

	var catalog *analysis.Catalog
	if catalogFile != "" {
		raw, err := os.ReadFile(catalogFile)
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
		if catalog, err = analysis.LoadCatalog(raw); err != nil {
			return err
		}
	}

	report, err := analysis.NewEngine(catalog).Analyze(tasks)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
