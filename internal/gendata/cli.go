package gendata

import (
	"fmt"
	"os"

	"github.com/okian/capwindow/pkg/logger"
)

// SetupLogging initializes the shared logger for CLI runs.
func SetupLogging() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// ShowHelp prints usage information for the dataset generator.
func ShowHelp() {
	os.Stdout.WriteString(`Capwindow Dataset Generator
===========================

Generates a synthetic team/contract dataset for the championship window
service. The same seed always produces the same dataset.

Usage:
  go run cmd/gen-dataset/main.go [options]

Options:
  -teams int
        Number of franchises to include (default 32)
  -seed int
        RNG seed; reuse a seed to reproduce a dataset (default 1)
  -year int
        First contract year (default league current year)
  -output string
        Output file for the dataset (default: dataset_TIMESTAMP.json)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Full league with the default seed
  go run cmd/gen-dataset/main.go -output dataset.json

  # A small reproducible fixture
  go run cmd/gen-dataset/main.go -teams 8 -seed 42 -output fixture.json
`)
}
