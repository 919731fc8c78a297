package repository

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/okian/capwindow/internal/domain/model"
)

//go:embed default_dataset.json
var defaultDatasetJSON []byte

// Dataset is one complete input snapshot. SeasonResults is keyed by team id.
type Dataset struct {
	Teams         []model.Team                  `json:"teams"`
	QBContracts   []model.QBContract            `json:"qb_contracts"`
	SeasonResults map[string]model.SeasonResult `json:"season_results"`
	RookieStars   []model.RookieContractStar    `json:"rookie_stars"`
}

// DefaultDataset decodes the dataset shipped with the binary.
func DefaultDataset() (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(defaultDatasetJSON, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return ds, nil
}

// LoadDatasetFile reads a dataset snapshot from a JSON file.
func LoadDatasetFile(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %q: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset %q: %w", path, err)
	}
	return ds, nil
}

// Validate enforces the structural guarantees the scoring engine assumes:
// unique team ids, contracts referencing known teams, at most one contract
// per team, and unique ascending cap-hit years within each contract.
func (d Dataset) Validate() error {
	if len(d.Teams) == 0 {
		return fmt.Errorf("%w: no teams", ErrInvalidDataset)
	}

	teamIDs := make(map[string]struct{}, len(d.Teams))
	for _, team := range d.Teams {
		if team.ID == "" {
			return fmt.Errorf("%w: team with empty id", ErrInvalidDataset)
		}
		if _, dup := teamIDs[team.ID]; dup {
			return fmt.Errorf("%w: duplicate team id %q", ErrInvalidDataset, team.ID)
		}
		teamIDs[team.ID] = struct{}{}
	}

	contractTeams := make(map[string]struct{}, len(d.QBContracts))
	for _, contract := range d.QBContracts {
		if _, known := teamIDs[contract.TeamID]; !known {
			return fmt.Errorf("%w: contract %q references unknown team %q",
				ErrInvalidDataset, contract.PlayerID, contract.TeamID)
		}
		if _, dup := contractTeams[contract.TeamID]; dup {
			return fmt.Errorf("%w: multiple contracts for team %q",
				ErrInvalidDataset, contract.TeamID)
		}
		contractTeams[contract.TeamID] = struct{}{}

		lastYear := 0
		for _, hit := range contract.CapHits {
			if hit.Year <= lastYear {
				return fmt.Errorf("%w: contract %q cap-hit years not strictly ascending",
					ErrInvalidDataset, contract.PlayerID)
			}
			lastYear = hit.Year
		}
	}

	for teamID := range d.SeasonResults {
		if _, known := teamIDs[teamID]; !known {
			return fmt.Errorf("%w: season result for unknown team %q",
				ErrInvalidDataset, teamID)
		}
	}

	for _, rookie := range d.RookieStars {
		if _, known := teamIDs[rookie.TeamID]; !known {
			return fmt.Errorf("%w: rookie %q references unknown team %q",
				ErrInvalidDataset, rookie.PlayerID, rookie.TeamID)
		}
	}

	return nil
}
