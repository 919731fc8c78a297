package gendata

import "time"

// Config holds configuration for the dataset generator
type Config struct {
	NumTeams    int    // Number of franchises to include
	Seed        int64  // RNG seed; the same seed always produces the same dataset
	CurrentYear int    // First contract year
	OutputFile  string // Output file for the dataset
	Verbose     bool   // Enable verbose logging
}

// Stats holds generation statistics
type Stats struct {
	TeamsGenerated     int
	ContractsGenerated int
	RookiesGenerated   int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
