package gendata

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/okian/capwindow/internal/adapters/repository"
	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/internal/domain/surplus"
	"github.com/okian/capwindow/pkg/logger"
)

// QB contract archetypes. The distribution mirrors the spread of real
// rosters: a few elite deals, a few albatrosses, plenty in between.
const (
	caseRookieStar     = 0
	caseRookieUnproven = 1
	caseEliteVeteran   = 2
	caseMidVeteran     = 3
	caseExpensiveAging = 4
	caseAlbatross      = 5
	caseBridgeVeteran  = 6
	caseFreshExtension = 7
	archetypeCount     = 8
)

// Cap-hit starting percentages per archetype. Each contract starts inside
// its band and escalates year over year.
const (
	rookiePctMin    = 1.5
	rookiePctRange  = 2.5
	elitePctMin     = 8.0
	elitePctRange   = 3.0
	midPctMin       = 6.0
	midPctRange     = 4.0
	agingPctMin     = 11.0
	agingPctRange   = 3.0
	albatrossPctMin = 15.0
	albatrossPctRng = 10.0
	bridgePctMin    = 3.0
	bridgePctRange  = 3.0
	freshPctMin     = 4.0
	freshPctRange   = 3.0
)

const (
	escalationMin     = 1.05
	escalationRange   = 0.25
	signingBonusShare = 0.35
	maxRookiesPerTeam = 4
	rookieHitMin      = 900_000
	rookieHitRange    = 5_100_000
)

// rookiePositions are the positions the surplus model prices.
var rookiePositions = []string{
	"WR1", "WR", "EDGE", "CB", "DT", "OT", "OG", "C", "RB", "LB", "S", "TE",
}

// playerID derives a stable UUID from the player's name and team so the
// same seed always produces byte-identical output.
func playerID(teamID, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(teamID+"/"+name)).String()
}

// Generate builds a synthetic dataset for cfg.NumTeams franchises. The
// output always passes repository validation.
func Generate(ctx context.Context, cfg *Config, stats *Stats) (repository.Dataset, error) {
	if cfg.NumTeams < 1 || cfg.NumTeams > len(franchises) {
		return repository.Dataset{}, fmt.Errorf("team count must be between 1 and %d, got %d", len(franchises), cfg.NumTeams)
	}
	currentYear := cfg.CurrentYear
	if currentYear <= 0 {
		currentYear = league.DefaultCurrentYear
	}
	params := league.NewParams(league.WithCurrentYear(currentYear))

	logger.Get().Info(ctx, "generating dataset",
		logger.Int("teams", cfg.NumTeams),
		logger.Int("currentYear", currentYear))

	rng := rand.New(rand.NewSource(cfg.Seed))

	ds := repository.Dataset{
		Teams:         make([]model.Team, cfg.NumTeams),
		QBContracts:   make([]model.QBContract, 0, cfg.NumTeams),
		SeasonResults: make(map[string]model.SeasonResult, cfg.NumTeams),
		RookieStars:   nil,
	}
	copy(ds.Teams, franchises[:cfg.NumTeams])

	for _, team := range ds.Teams {
		archetype := rng.Intn(archetypeCount)

		contract := generateContract(rng, params, team.ID, archetype)
		ds.QBContracts = append(ds.QBContracts, contract)
		ds.SeasonResults[team.ID] = generateSeason(rng, archetype)

		for i, n := 0, rng.Intn(maxRookiesPerTeam+1); i < n; i++ {
			ds.RookieStars = append(ds.RookieStars, generateRookie(rng, team.ID, currentYear))
		}
	}

	if err := ds.Validate(); err != nil {
		return repository.Dataset{}, fmt.Errorf("generated dataset failed validation: %w", err)
	}

	stats.TeamsGenerated = len(ds.Teams)
	stats.ContractsGenerated = len(ds.QBContracts)
	stats.RookiesGenerated = len(ds.RookieStars)

	logger.Get().Info(ctx, "generated dataset successfully",
		logger.Int("teams", stats.TeamsGenerated),
		logger.Int("contracts", stats.ContractsGenerated),
		logger.Int("rookies", stats.RookiesGenerated))

	return ds, nil
}

func generateName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

// generateContract builds one QB contract for the archetype. Cap hits start
// inside the archetype's band and escalate with a random year-over-year
// multiplier; albatross deals get a trailing void year.
func generateContract(rng *rand.Rand, params league.Params, teamID string, archetype int) model.QBContract {
	var (
		startPct     float64
		years        int
		contractType string
		voidYear     bool
	)

	switch archetype {
	case caseRookieStar, caseRookieUnproven:
		startPct = rookiePctMin + rng.Float64()*rookiePctRange
		years = 2 + rng.Intn(3)
		contractType = model.ContractTypeRookie
	case caseEliteVeteran:
		startPct = elitePctMin + rng.Float64()*elitePctRange
		years = 3 + rng.Intn(3)
		contractType = "veteran"
	case caseMidVeteran:
		startPct = midPctMin + rng.Float64()*midPctRange
		years = 2 + rng.Intn(3)
		contractType = "veteran"
	case caseExpensiveAging:
		startPct = agingPctMin + rng.Float64()*agingPctRange
		years = 2 + rng.Intn(2)
		contractType = "veteran"
	case caseAlbatross:
		startPct = albatrossPctMin + rng.Float64()*albatrossPctRng
		years = 2 + rng.Intn(3)
		contractType = "veteran"
		voidYear = true
	case caseBridgeVeteran:
		startPct = bridgePctMin + rng.Float64()*bridgePctRange
		years = 1
		contractType = "veteran"
	default:
		startPct = freshPctMin + rng.Float64()*freshPctRange
		years = 4 + rng.Intn(2)
		contractType = "extension"
	}

	name := generateName(rng)
	hits := make([]model.CapHitYear, 0, years+1)
	pct := startPct
	total := 0.0
	for i := 0; i < years; i++ {
		year := params.CurrentYear + i
		amount := math.Round(params.ProjectCap(year) * pct / 100)
		hits = append(hits, model.CapHitYear{
			Year:         year,
			Amount:       amount,
			BaseSalary:   math.Round(amount * (1 - signingBonusShare)),
			SigningBonus: math.Round(amount * signingBonusShare),
		})
		total += amount
		pct *= escalationMin + rng.Float64()*escalationRange
	}
	if voidYear {
		last := hits[len(hits)-1]
		hits = append(hits, model.CapHitYear{
			Year:       last.Year + 1,
			Amount:     math.Round(last.Amount * 0.6),
			IsVoidYear: true,
		})
	}

	return model.QBContract{
		PlayerID:           playerID(teamID, name),
		PlayerName:         name,
		TeamID:             teamID,
		ContractType:       contractType,
		TotalValue:         total,
		AAV:                math.Round(total / float64(years)),
		GuaranteedMoney:    math.Round(total * 0.6),
		YearsRemaining:     years,
		CapHits:            hits,
		PerformanceMetrics: generateMetrics(rng, archetype),
	}
}

// generateMetrics returns nil for unproven QBs so the quality model falls
// back to its unproven default.
func generateMetrics(rng *rand.Rand, archetype int) *model.PerformanceMetrics {
	switch archetype {
	case caseRookieUnproven:
		return nil
	case caseRookieStar, caseEliteVeteran:
		return &model.PerformanceMetrics{
			EPAPerPlay:  0.15 + rng.Float64()*0.15,
			CPOE:        2.0 + rng.Float64()*4.0,
			QBR:         60 + rng.Float64()*15,
			PFFGrade:    80 + rng.Float64()*13,
			Wins:        10 + rng.Intn(5),
			PlayoffWins: rng.Intn(4),
		}
	case caseAlbatross, caseExpensiveAging:
		return &model.PerformanceMetrics{
			EPAPerPlay:  -0.05 + rng.Float64()*0.15,
			CPOE:        -1.0 + rng.Float64()*3.0,
			QBR:         45 + rng.Float64()*15,
			PFFGrade:    60 + rng.Float64()*15,
			Wins:        4 + rng.Intn(6),
			PlayoffWins: 0,
		}
	default:
		return &model.PerformanceMetrics{
			EPAPerPlay:  0.02 + rng.Float64()*0.12,
			CPOE:        rng.Float64() * 3.0,
			QBR:         50 + rng.Float64()*15,
			PFFGrade:    65 + rng.Float64()*15,
			Wins:        6 + rng.Intn(6),
			PlayoffWins: rng.Intn(2),
		}
	}
}

// generateSeason correlates last season's results with the QB archetype.
func generateSeason(rng *rand.Rand, archetype int) model.SeasonResult {
	var wins int
	switch archetype {
	case caseRookieStar, caseEliteVeteran, caseFreshExtension:
		wins = 9 + rng.Intn(7)
	case caseAlbatross:
		wins = 2 + rng.Intn(5)
	default:
		wins = 5 + rng.Intn(7)
	}

	season := model.SeasonResult{
		Wins:             wins,
		Losses:           17 - wins,
		CoachTier:        6 + rng.Intn(13),
		QBProductionTier: 2 + rng.Intn(7),
	}
	if wins >= 10 {
		season.MadePlayoffs = true
		season.PlayoffWins = rng.Intn(4)
		if season.PlayoffWins == 3 {
			season.ConfChampionship = true
			season.SuperBowlAppearance = rng.Intn(2) == 0
			season.SuperBowlWin = season.SuperBowlAppearance && rng.Intn(2) == 0
		}
	}
	return season
}

func generateRookie(rng *rand.Rand, teamID string, currentYear int) model.RookieContractStar {
	name := generateName(rng)
	draftYear := currentYear - rng.Intn(3)
	draftRound := 1 + rng.Intn(3)
	return model.RookieContractStar{
		PlayerID:              playerID(teamID, name),
		PlayerName:            name,
		Position:              rookiePositions[rng.Intn(len(rookiePositions))],
		TeamID:                teamID,
		DraftYear:             draftYear,
		DraftRound:            draftRound,
		CurrentYearCapHit:     rookieHitMin + math.Round(rng.Float64()*rookieHitRange),
		PFFGrade:              math.Round((62+rng.Float64()*33)*10) / 10,
		ExtensionEligibleYear: surplus.ExtensionEligibleYear(draftYear, draftRound),
	}
}
