// Package ranking orders team window scores and derives the alert feed.
// The alert rules consult a curated, time-sensitive allow-list ruleset that
// is injected rather than hard-coded, so the lists can change without
// touching rule logic.
package ranking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
)

// MaxAlerts bounds the alert feed.
const MaxAlerts = 12

// Thresholds for the alert rules, in cap-hit percentage points.
const (
	rookieAlertMaxPercent   = 4.0
	rookieAlertMinYears     = 3
	favorableVetMaxPercent  = 13.0
	escalationMaxPercent    = 10.0
	escalationMaxYearsUntil = 2
	escalationMinYearsLeft  = 2
	escalationJumpPoints    = 3.0
	closingWarnFloorPercent = 10.0
	dangerAlertFloorPercent = 15.0
	disasterAlertMinPercent = 25.0
)

// percentPlaceholder is substituted with the team's current cap-hit
// percentage in override messages.
const percentPlaceholder = "{percent}"

// Ruleset is the injectable allow-list configuration for alert generation.
// Overrides maps a team id to a custom warning message; the message may
// contain "{percent}" which is replaced with the current cap-hit percent.
type Ruleset struct {
	BridgeQBs      []string          `json:"bridge_qbs" koanf:"bridge_qbs"`
	FavorableVets  []string          `json:"favorable_vets" koanf:"favorable_vets"`
	NoWarningTeams []string          `json:"no_warning_teams" koanf:"no_warning_teams"`
	Overrides      map[string]string `json:"overrides" koanf:"overrides"`
}

// DefaultRuleset returns the curated lists for the current season.
func DefaultRuleset() Ruleset {
	return Ruleset{
		BridgeQBs:      []string{"aaron-rodgers", "justin-fields", "geno-smith"},
		FavorableVets:  []string{"baker-mayfield"},
		NoWarningTeams: []string{"PHI"},
		Overrides: map[string]string{
			"LAR": "Matthew Stafford at {percent}%. Window CLOSED by cap rules, but $88M rookie surplus keeps them competitive. Unsustainable.",
		},
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Sort orders scores descending by overall score, breaking ties by
// ascending cap-hit percentage so the cheaper QB ranks higher. The input
// is not modified.
func Sort(scores []model.TeamWindowScore) []model.TeamWindowScore {
	out := make([]model.TeamWindowScore, len(scores))
	copy(out, scores)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OverallScore != out[j].OverallScore {
			return out[i].OverallScore > out[j].OverallScore
		}
		return out[i].QBCapHitPercent < out[j].QBCapHitPercent
	})

	return out
}

// Entry pairs one team's score with the contract the alert rules inspect.
type Entry struct {
	Score    model.TeamWindowScore
	Contract model.QBContract
}

// AlertEngine evaluates the alert rules over scored teams.
type AlertEngine struct {
	params league.Params
	rules  Ruleset
	now    func() time.Time
}

// AlertOption configures an AlertEngine.
type AlertOption func(*AlertEngine)

// WithParams overrides the league parameters.
func WithParams(params league.Params) AlertOption {
	return func(e *AlertEngine) {
		e.params = params
	}
}

// WithRuleset overrides the allow-list ruleset.
func WithRuleset(rules Ruleset) AlertOption {
	return func(e *AlertEngine) {
		e.rules = rules
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) AlertOption {
	return func(e *AlertEngine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewAlertEngine builds an AlertEngine with the default ruleset and league
// parameters.
func NewAlertEngine(opts ...AlertOption) *AlertEngine {
	e := &AlertEngine{
		params: league.NewParams(),
		rules:  DefaultRuleset(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate applies the rules to each entry in order, first match wins, at
// most one alert per team. The feed is grouped positive, then warning,
// then danger, stable within each class, and truncated to MaxAlerts.
func (e *AlertEngine) Generate(entries []Entry) []model.WindowAlert {
	alerts := make([]model.WindowAlert, 0, len(entries))

	for _, entry := range entries {
		if alert, ok := e.evaluate(entry); ok {
			alerts = append(alerts, alert)
		}
	}

	classRank := map[string]int{
		model.AlertPositive: 0,
		model.AlertWarning:  1,
		model.AlertDanger:   2,
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return classRank[alerts[i].Type] < classRank[alerts[j].Type]
	})

	if len(alerts) > MaxAlerts {
		alerts = alerts[:MaxAlerts]
	}
	return alerts
}

// evaluate runs the rule chain for one team. The escalation guard consumes
// the team even when the next-year jump check fails, matching the chain's
// first-match semantics.
func (e *AlertEngine) evaluate(entry Entry) (model.WindowAlert, bool) {
	score := entry.Score
	contract := entry.Contract

	if msg, ok := e.rules.Overrides[score.TeamID]; ok {
		rendered := strings.ReplaceAll(msg, percentPlaceholder, fmt.Sprintf("%.2f", score.QBCapHitPercent))
		return e.alert(score.TeamID, model.AlertWarning, rendered), true
	}

	isBridgeQB := contains(e.rules.BridgeQBs, contract.PlayerID)
	isFavorableVet := contains(e.rules.FavorableVets, contract.PlayerID)
	noWarnings := contains(e.rules.NoWarningTeams, score.TeamID)
	isRookie := contract.ContractType == model.ContractTypeRookie

	switch {
	case isRookie && score.QBCapHitPercent < rookieAlertMaxPercent && contract.YearsRemaining >= rookieAlertMinYears:
		return e.alert(score.TeamID, model.AlertPositive, fmt.Sprintf(
			"%s at %.2f%%. Window WIDE OPEN for %d+ years.",
			contract.PlayerName, score.QBCapHitPercent, contract.YearsRemaining,
		)), true

	case isFavorableVet && score.QBCapHitPercent < favorableVetMaxPercent:
		return e.alert(score.TeamID, model.AlertPositive, fmt.Sprintf(
			"%s at %.2f%%. Window FAVORABLE through %d.",
			contract.PlayerName, score.QBCapHitPercent, e.params.CurrentYear+2,
		)), true

	case !isBridgeQB && !noWarnings && !isFavorableVet &&
		score.QBCapHitPercent < escalationMaxPercent &&
		score.YearsUntilThreshold <= escalationMaxYearsUntil &&
		contract.YearsRemaining >= escalationMinYearsLeft:
		nextYear := e.params.CurrentYear + 1
		nextHit, ok := contract.CapHitForYear(nextYear)
		if !ok {
			return model.WindowAlert{}, false
		}
		nextPercent := e.params.CapHitPercent(nextHit.Amount, nextYear)
		if nextPercent <= score.QBCapHitPercent+escalationJumpPoints {
			return model.WindowAlert{}, false
		}
		return e.alert(score.TeamID, model.AlertWarning, fmt.Sprintf(
			"%s at %.2f%% now, escalates to %.2f%% in %d. Clock is ticking.",
			contract.PlayerName, score.QBCapHitPercent, nextPercent, nextYear,
		)), true

	case !isFavorableVet &&
		score.QBCapHitPercent >= closingWarnFloorPercent &&
		score.QBCapHitPercent < dangerAlertFloorPercent:
		suffix := "."
		if years := score.YearsUntilThreshold; years > 0 {
			suffix = fmt.Sprintf(" - %d %s until threshold.", years, pluralYears(years))
		}
		return e.alert(score.TeamID, model.AlertWarning, fmt.Sprintf(
			"%s at %.2f%%. Window closing%s",
			contract.PlayerName, score.QBCapHitPercent, suffix,
		)), true

	case score.QBCapHitPercent >= dangerAlertFloorPercent:
		msg := fmt.Sprintf(
			"%s at %.2f%%. Championship window CLOSED.",
			contract.PlayerName, score.QBCapHitPercent,
		)
		if score.QBCapHitPercent >= disasterAlertMinPercent {
			msg = fmt.Sprintf(
				"%s at %.2f%%. DISASTER - worst contract situation in NFL.",
				contract.PlayerName, score.QBCapHitPercent,
			)
		}
		return e.alert(score.TeamID, model.AlertDanger, msg), true
	}

	return model.WindowAlert{}, false
}

func (e *AlertEngine) alert(teamID, kind, message string) model.WindowAlert {
	return model.WindowAlert{
		TeamID:    teamID,
		Type:      kind,
		Message:   message,
		Timestamp: e.now(),
	}
}

func pluralYears(n int) string {
	if n == 1 {
		return "year"
	}
	return "years"
}
