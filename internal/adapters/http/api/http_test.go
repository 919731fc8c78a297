package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/capwindow/internal/adapters/http/api"
	"github.com/okian/capwindow/internal/adapters/repository"
	"github.com/okian/capwindow/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	rankings     []model.TeamWindowScore
	rankingsErr  error
	details      map[string]api.TeamDetail
	trajectories map[string]api.TrajectoryReport
	alerts       []model.WindowAlert
	alertsErr    error
	zones        []api.ZoneCount
}

func (m *mockDependencies) Rankings(ctx context.Context) ([]model.TeamWindowScore, error) {
	if m.rankingsErr != nil {
		return nil, m.rankingsErr
	}
	return m.rankings, nil
}

func (m *mockDependencies) TeamDetail(ctx context.Context, teamID string) (api.TeamDetail, error) {
	detail, ok := m.details[teamID]
	if !ok {
		return api.TeamDetail{}, repository.ErrTeamNotFound
	}
	return detail, nil
}

func (m *mockDependencies) TeamTrajectory(ctx context.Context, teamID string, horizonYears int) (api.TrajectoryReport, error) {
	report, ok := m.trajectories[teamID]
	if !ok {
		return api.TrajectoryReport{}, repository.ErrTeamNotFound
	}
	return report, nil
}

func (m *mockDependencies) Alerts(ctx context.Context) ([]model.WindowAlert, error) {
	if m.alertsErr != nil {
		return nil, m.alertsErr
	}
	return m.alerts, nil
}

func (m *mockDependencies) ZoneBreakdown(ctx context.Context) ([]api.ZoneCount, error) {
	return m.zones, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func testScore(teamID string, overall, pct float64) model.TeamWindowScore {
	return model.TeamWindowScore{
		TeamID:             teamID,
		OverallScore:       overall,
		QBCapHitPercent:    pct,
		HasCurrentYearData: true,
		WindowZone:         model.WindowZone{Zone: "ELITE", Label: "CHAMPIONSHIP WINDOW WIDE OPEN"},
		WindowStatus:       model.WindowStatus{Status: "open", Label: "OPEN"},
		UpdatedAt:          time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testMux(deps *mockDependencies, stats *mockStatsProvider, maxLimit int) *http.ServeMux {
	server := api.NewServer(deps, stats, maxLimit)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{
			rankings: []model.TeamWindowScore{
				testScore("PHI", 72, 7.8),
				testScore("KC", 55, 10.4),
			},
			details: map[string]api.TeamDetail{
				"PHI": {Team: model.Team{ID: "PHI", Name: "Eagles"}, Score: testScore("PHI", 72, 7.8)},
			},
			trajectories: map[string]api.TrajectoryReport{
				"PHI": {TeamID: "PHI", PlayerName: "Jalen Hurts"},
			},
		}
		stats := &mockStatsProvider{stats: map[string]interface{}{"teams": 2}}
		mux := testMux(deps, stats, 32)

		Convey("Then the health endpoint serves metrics", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the stats endpoint returns the provider payload", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var got map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(got["teams"], ShouldEqual, 2)
		})

		Convey("Then unknown routes return 404", func() {
			req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRankingsHandler(t *testing.T) {
	Convey("Given a rankings endpoint with three scored teams", t, func() {
		deps := &mockDependencies{
			rankings: []model.TeamWindowScore{
				testScore("PHI", 72, 7.8),
				testScore("KC", 55, 10.4),
				testScore("CLE", 12, 26.7),
			},
		}
		mux := testMux(deps, &mockStatsProvider{}, 32)

		get := func(target string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w
		}

		Convey("When no limit is given, every team comes back in order", func() {
			w := get("/rankings")
			So(w.Code, ShouldEqual, http.StatusOK)

			var got []model.TeamWindowScore
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(len(got), ShouldEqual, 3)
			So(got[0].TeamID, ShouldEqual, "PHI")
			So(got[2].TeamID, ShouldEqual, "CLE")
		})

		Convey("When a limit is given, the list is truncated", func() {
			w := get("/rankings?limit=2")
			So(w.Code, ShouldEqual, http.StatusOK)

			var got []model.TeamWindowScore
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[1].TeamID, ShouldEqual, "KC")
		})

		Convey("When the limit is not a positive integer, it is rejected", func() {
			So(get("/rankings?limit=abc").Code, ShouldEqual, http.StatusBadRequest)
			So(get("/rankings?limit=0").Code, ShouldEqual, http.StatusBadRequest)
			So(get("/rankings?limit=-3").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit exceeds the maximum, it is rejected with a code", func() {
			w := get("/rankings?limit=100")
			So(w.Code, ShouldEqual, http.StatusBadRequest)

			var got map[string]string
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(got["code"], ShouldEqual, "limit_exceeded")
		})

		Convey("When the scoring pass fails, a 500 comes back", func() {
			deps.rankingsErr = errors.New("scoring pass failed")
			So(get("/rankings").Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("When the method is not GET, the route 404s", func() {
			req := httptest.NewRequest(http.MethodPost, "/rankings", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestTeamsHandler(t *testing.T) {
	Convey("Given a teams endpoint", t, func() {
		deps := &mockDependencies{
			details: map[string]api.TeamDetail{
				"PHI": {Team: model.Team{ID: "PHI", Name: "Eagles"}, Score: testScore("PHI", 72, 7.8)},
			},
			trajectories: map[string]api.TrajectoryReport{
				"PHI": {TeamID: "PHI", PlayerName: "Jalen Hurts", TrendSlope: 1.58},
			},
		}
		mux := testMux(deps, &mockStatsProvider{}, 32)

		get := func(target string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w
		}

		Convey("When the team exists, the detail payload comes back", func() {
			w := get("/teams/PHI")
			So(w.Code, ShouldEqual, http.StatusOK)

			var got api.TeamDetail
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(got.Team.Name, ShouldEqual, "Eagles")
			So(got.Score.OverallScore, ShouldEqual, 72)
		})

		Convey("When the team is unknown, a 404 comes back", func() {
			w := get("/teams/XXX")
			So(w.Code, ShouldEqual, http.StatusNotFound)

			var got map[string]string
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(got["code"], ShouldEqual, "not_found")
		})

		Convey("When the team id is empty, the request is rejected", func() {
			So(get("/teams/").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the trajectory is requested, the report comes back", func() {
			w := get("/teams/PHI/trajectory")
			So(w.Code, ShouldEqual, http.StatusOK)

			var got api.TrajectoryReport
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(got.PlayerName, ShouldEqual, "Jalen Hurts")
			So(got.TrendSlope, ShouldEqual, 1.58)
		})

		Convey("When the trajectory horizon is malformed, the request is rejected", func() {
			So(get("/teams/PHI/trajectory?years=abc").Code, ShouldEqual, http.StatusBadRequest)
			So(get("/teams/PHI/trajectory?years=0").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the subresource is unknown, the route 404s", func() {
			So(get("/teams/PHI/history").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestAlertsHandler(t *testing.T) {
	Convey("Given an alerts endpoint", t, func() {
		deps := &mockDependencies{
			alerts: []model.WindowAlert{
				{TeamID: "WAS", Type: model.AlertPositive, Message: "rookie deal"},
				{TeamID: "CLE", Type: model.AlertDanger, Message: "window closed"},
			},
		}
		mux := testMux(deps, &mockStatsProvider{}, 32)

		Convey("When alerts exist, they come back in order", func() {
			req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var got []model.WindowAlert
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[0].TeamID, ShouldEqual, "WAS")
			So(got[1].Type, ShouldEqual, model.AlertDanger)
		})

		Convey("When no alerts exist, an empty array comes back rather than null", func() {
			deps.alerts = nil
			req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldStartWith, "[]")
		})

		Convey("When the feed fails, a 500 comes back", func() {
			deps.alertsErr = errors.New("store unavailable")
			req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestZonesHandler(t *testing.T) {
	Convey("Given a zones endpoint", t, func() {
		deps := &mockDependencies{
			zones: []api.ZoneCount{
				{Zone: model.WindowZone{Zone: "ELITE"}, Teams: []string{"PHI", "WAS"}, Count: 2},
				{Zone: model.WindowZone{Zone: "CLOSED"}, Teams: []string{"CLE"}, Count: 1},
			},
		}
		mux := testMux(deps, &mockStatsProvider{}, 32)

		Convey("When zones exist, the breakdown comes back best zone first", func() {
			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var got []api.ZoneCount
			So(json.NewDecoder(w.Body).Decode(&got), ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[0].Count, ShouldEqual, 2)
			So(got[1].Teams, ShouldResemble, []string{"CLE"})
		})

		Convey("When no zones exist, an empty array comes back rather than null", func() {
			deps.zones = nil
			req := httptest.NewRequest(http.MethodGet, "/zones", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldStartWith, "[]")
		})
	})
}
