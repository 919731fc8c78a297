package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/capwindow/internal/gendata"
)

// Default configuration constants.
const (
	defaultNumTeams = 32
	defaultSeed     = 1
	defaultTimeout  = 1 * time.Minute
)

func main() {
	var (
		numTeams   = flag.Int("teams", defaultNumTeams, "Number of franchises to include")
		seed       = flag.Int64("seed", defaultSeed, "RNG seed; reuse a seed to reproduce a dataset")
		year       = flag.Int("year", 0, "First contract year (default league current year)")
		outputFile = flag.String("output", "", "Output file for the dataset (default: dataset_TIMESTAMP.json)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		gendata.ShowHelp()
		return
	}

	if err := gendata.SetupLogging(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	config := &gendata.Config{
		NumTeams:    *numTeams,
		Seed:        *seed,
		CurrentYear: *year,
		OutputFile:  *outputFile,
		Verbose:     *verbose,
	}

	if err := gendata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}
