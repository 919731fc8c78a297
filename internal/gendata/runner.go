package gendata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/capwindow/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0600
)

// Run generates a dataset and writes it to the configured output file.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting dataset generation",
		logger.Int("teams", config.NumTeams),
		logger.Any("seed", config.Seed),
		logger.String("output", config.OutputFile),
		logger.Any("verbose", config.Verbose))

	ds, err := Generate(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("dataset generation failed: %w", err)
	}

	if err := saveDataset(ctx, config, ds); err != nil {
		return fmt.Errorf("dataset write failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info(ctx, "final statistics",
		logger.Int("teamsGenerated", stats.TeamsGenerated),
		logger.Int("contractsGenerated", stats.ContractsGenerated),
		logger.Int("rookiesGenerated", stats.RookiesGenerated),
		logger.String("duration", stats.Duration.String()))

	return nil
}

// saveDataset writes the dataset as indented JSON.
func saveDataset(ctx context.Context, config *Config, ds interface{}) error {
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "dataset_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "dataset saved to file", logger.String("filename", filename))
	return nil
}
