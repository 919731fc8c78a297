// Package zone classifies cap-hit percentages into window zones and overall
// scores into window statuses. Both classifiers are total functions over
// ordered threshold tables so the boundary semantics stay auditable.
package zone

import "github.com/okian/capwindow/internal/domain/model"

// Zone names, ordered from best to worst.
const (
	Elite     = "ELITE"
	Favorable = "FAVORABLE"
	Caution   = "CAUTION"
	Danger    = "DANGER"
	Closed    = "CLOSED"
)

// Status names, ordered from best to worst.
const (
	WideOpen   = "wide_open"
	Open       = "open"
	Closing    = "closing"
	SoftClosed = "soft_closed"
	HardClosed = "hard_closed"
)

// zoneBand is one row of the classifier table: percents strictly below
// upperBound (and not claimed by an earlier row) fall into zone.
type zoneBand struct {
	upperBound float64
	zone       model.WindowZone
}

// zoneBands maps cap-hit percent to a zone. Boundaries are closed below:
// exactly 6.0 is FAVORABLE, exactly 15.0 is CLOSED. The last row is the
// catch-all for any percent at or above 15.
var zoneBands = []zoneBand{
	{6, model.WindowZone{
		Zone:              Elite,
		Color:             "#00ff88",
		Label:             "CHAMPIONSHIP WINDOW WIDE OPEN",
		Description:       "Maximum roster flexibility. This is where Super Bowls are won.",
		HistoricalWinRate: "78% playoff appearance, 34% Super Bowl appearance",
	}},
	{10, model.WindowZone{
		Zone:              Favorable,
		Color:             "#88ff00",
		Label:             "WINDOW OPEN",
		Description:       "Strong roster flexibility. Contender territory.",
		HistoricalWinRate: "71% playoff appearance, 22% Super Bowl appearance",
	}},
	{13, model.WindowZone{
		Zone:              Caution,
		Color:             "#ffaa00",
		Label:             "WINDOW CLOSING",
		Description:       "At the threshold. Still possible but getting harder.",
		HistoricalWinRate: "58% playoff appearance, 11% Super Bowl appearance",
	}},
	{15, model.WindowZone{
		Zone:              Danger,
		Color:             "#ff6600",
		Label:             "WINDOW NEARLY CLOSED",
		Description:       "Roster construction compromised. Need elite play just to compete.",
		HistoricalWinRate: "44% playoff appearance, 4% Super Bowl appearance",
	}},
}

// closedZone is the catch-all band for percent >= 15.
var closedZone = model.WindowZone{
	Zone:              Closed,
	Color:             "#ff4444",
	Label:             "WINDOW CLOSED",
	Description:       "Cannot build a championship roster at this cap hit.",
	HistoricalWinRate: "31% playoff appearance, 1% Super Bowl appearance",
}

// Classify maps a cap-hit percentage to its window zone.
func Classify(capHitPercent float64) model.WindowZone {
	for _, band := range zoneBands {
		if capHitPercent < band.upperBound {
			return band.zone
		}
	}
	return closedZone
}

// statusBand is one row of the status table: scores at or above lowerBound
// (and not claimed by an earlier row) resolve to status.
type statusBand struct {
	lowerBound float64
	status     model.WindowStatus
}

var statusBands = []statusBand{
	{80, model.WindowStatus{Status: WideOpen, Color: "#00ff88", Label: "WIDE OPEN"}},
	{65, model.WindowStatus{Status: Open, Color: "#88ff00", Label: "OPEN"}},
	{50, model.WindowStatus{Status: Closing, Color: "#ffaa00", Label: "CLOSING"}},
	{35, model.WindowStatus{Status: SoftClosed, Color: "#ff6600", Label: "SOFT CLOSED"}},
}

// hardClosedStatus is the catch-all status for scores below 35.
var hardClosedStatus = model.WindowStatus{Status: HardClosed, Color: "#ff4444", Label: "CLOSED"}

// StatusForScore maps an overall window score to its five-tier status.
func StatusForScore(score float64) model.WindowStatus {
	for _, band := range statusBands {
		if score >= band.lowerBound {
			return band.status
		}
	}
	return hardClosedStatus
}
