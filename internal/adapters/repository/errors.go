package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrContractNotFound = errors.New("qb contract not found")
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrEmptyTeamID      = errors.New("empty team id")
)
