// Package model contains the plain records consumed and produced by the
// championship window engine. Records are created at data-load time and
// never mutated; every scoring pass builds fresh result values.
package model

import "time"

// Team is immutable reference data for a franchise.
type Team struct {
	ID             string `json:"id"` // e.g. "PHI"
	Name           string `json:"name"`
	City           string `json:"city"`
	Conference     string `json:"conference"` // "AFC" or "NFC"
	Division       string `json:"division"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// CapHitYear is one season's cap charge within a contract. A void year
// carries dead money rather than a real cap charge; its Amount must not be
// read as cap consumption.
type CapHitYear struct {
	Year              int     `json:"year"`
	Amount            float64 `json:"amount"`
	BaseSalary        float64 `json:"base_salary"`
	SigningBonus      float64 `json:"signing_bonus"`
	IsVoidYear        bool    `json:"is_void_year"`
	DeadMoneyIfCut    float64 `json:"dead_money_if_cut,omitempty"`
	IsFifthYearOption bool    `json:"is_fifth_year_option,omitempty"`
}

// PerformanceMetrics are a QB's raw season performance inputs. A nil or
// all-zero value means "unproven", never a real score of zero.
type PerformanceMetrics struct {
	EPAPerPlay  float64 `json:"epa_per_play"`
	CPOE        float64 `json:"cpoe"`
	QBR         float64 `json:"qbr"`
	PFFGrade    float64 `json:"pff_grade"`
	Wins        int     `json:"wins"`
	PlayoffWins int     `json:"playoff_wins"`
}

// IsUnproven reports whether the metrics should be treated as absent.
func (m *PerformanceMetrics) IsUnproven() bool {
	return m == nil || (m.EPAPerPlay == 0 && m.QBR == 0 && m.PFFGrade == 0)
}

// QBContract is a quarterback's contract, owned by exactly one team at a
// time via TeamID. CapHits is ordered by year with at most one entry per
// year; the data-access collaborator guarantees both.
type QBContract struct {
	PlayerID           string              `json:"player_id"`
	PlayerName         string              `json:"player_name"`
	TeamID             string              `json:"team_id"`
	ContractType       string              `json:"contract_type"` // rookie, veteran, franchise_tag, ...
	TotalValue         float64             `json:"total_value"`
	AAV                float64             `json:"aav"`
	GuaranteedMoney    float64             `json:"guaranteed_money"`
	YearsRemaining     int                 `json:"years_remaining"`
	CapHits            []CapHitYear        `json:"cap_hits"`
	PerformanceMetrics *PerformanceMetrics `json:"performance_metrics,omitempty"`
}

// ContractTypeRookie marks a QB still on a rookie deal.
const ContractTypeRookie = "rookie"

// CapHitForYear returns the cap-hit record for a year, if present.
func (c *QBContract) CapHitForYear(year int) (CapHitYear, bool) {
	for _, h := range c.CapHits {
		if h.Year == year {
			return h, true
		}
	}
	return CapHitYear{}, false
}

// Clone returns a deep copy of the contract, so what-if simulations never
// alias the original's cap-hit slice.
func (c *QBContract) Clone() QBContract {
	out := *c
	out.CapHits = make([]CapHitYear, len(c.CapHits))
	copy(out.CapHits, c.CapHits)
	if c.PerformanceMetrics != nil {
		m := *c.PerformanceMetrics
		out.PerformanceMetrics = &m
	}
	return out
}

// SeasonResult is one team's season outcome plus external tier inputs used
// by the overall window score.
type SeasonResult struct {
	Wins                 int  `json:"wins"`
	Losses               int  `json:"losses"`
	MadePlayoffs         bool `json:"made_playoffs"`
	PlayoffWins          int  `json:"playoff_wins"`
	ConfChampionship     bool `json:"conf_championship"`
	SuperBowlAppearance  bool `json:"super_bowl_appearance"`
	SuperBowlWin         bool `json:"super_bowl_win"`
	CoachTier            int  `json:"coach_tier"`              // 0..20
	QBProductionTier     int  `json:"qb_production_tier"`      // 0..10
}

// RookieContractStar is a non-QB candidate for surplus-value accounting.
type RookieContractStar struct {
	PlayerID             string  `json:"player_id"`
	PlayerName           string  `json:"player_name"`
	Position             string  `json:"position"`
	TeamID               string  `json:"team_id"`
	DraftYear            int     `json:"draft_year"`
	DraftRound           int     `json:"draft_round"`
	CurrentYearCapHit    float64 `json:"current_year_cap_hit"`
	PFFGrade             float64 `json:"pff_grade"`
	ExtensionEligibleYear int    `json:"extension_eligible_year"`

	// Annotated by the surplus model on qualifying players.
	EstimatedMarketValue float64 `json:"estimated_market_value,omitempty"`
	SurplusValue         float64 `json:"surplus_value,omitempty"`
}

// NonQBSurplusResult aggregates rookie-contract surplus for one team.
type NonQBSurplusResult struct {
	TotalSurplus          float64              `json:"total_surplus"`
	StarRookies           []RookieContractStar `json:"star_rookies"`
	SustainabilityYears   int                  `json:"sustainability_years"`
	SurplusAsPercentOfCap float64              `json:"surplus_as_percent_of_cap"`
}

// TeamWindowScore is the composite result for one team. It is recomputed
// from source records on every pass and never persisted.
type TeamWindowScore struct {
	TeamID       string  `json:"team_id"`
	OverallScore float64 `json:"overall_score"` // 0-100, higher = more open window

	// Component sub-scores (each 0-100, display breakdown only; the overall
	// score uses its own banded tables).
	QBCapScore          float64 `json:"qb_cap_score"`
	QBQualityScore      float64 `json:"qb_quality_score"`
	SurplusScore        float64 `json:"surplus_score"`
	TrajectoryScore     float64 `json:"trajectory_score"`
	SustainabilityScore float64 `json:"sustainability_score"`
	CoreScore           float64 `json:"core_score"`

	// Raw metrics
	QBCapHitPercent     float64 `json:"qb_cap_hit_percent"`
	QBCapHit            float64 `json:"qb_cap_hit"`
	SalaryCap           float64 `json:"salary_cap"`
	YearsUntilThreshold int     `json:"years_until_threshold"`

	// HasCurrentYearData is false when no current-year cap-hit record
	// existed and the percent defaulted to 0 (reported as ELITE).
	HasCurrentYearData bool `json:"has_current_year_data"`

	// Derived values
	WindowZone   WindowZone   `json:"window_zone"`
	WindowStatus WindowStatus `json:"window_status"`

	UpdatedAt time.Time `json:"updated_at"`
}

// WindowZone is one of five ordered classifications of cap-hit percentage
// with static display metadata.
type WindowZone struct {
	Zone              string `json:"zone"` // ELITE, FAVORABLE, CAUTION, DANGER, CLOSED
	Color             string `json:"color"`
	Label             string `json:"label"`
	Description       string `json:"description"`
	HistoricalWinRate string `json:"historical_win_rate"`
}

// WindowStatus is the five-tier label keyed off the overall score.
type WindowStatus struct {
	Status string `json:"status"` // wide_open, open, closing, soft_closed, hard_closed
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// Alert classifications.
const (
	AlertPositive = "positive"
	AlertWarning  = "warning"
	AlertDanger   = "danger"
)

// WindowAlert is a classified, human-readable notice about one team.
type WindowAlert struct {
	TeamID    string    `json:"team_id"`
	Type      string    `json:"type"` // positive, warning, danger
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CapProjectionPoint is one year of a contract's projected cap-hit series.
// On void years Amount carries dead money instead of a cap charge and
// CapHitPercent is zero.
type CapProjectionPoint struct {
	Year          int     `json:"year"`
	CapHitPercent float64 `json:"cap_hit_percent"`
	Amount        float64 `json:"amount"`
	ProjectedCap  float64 `json:"projected_cap"`
	IsProjected   bool    `json:"is_projected"`
}
