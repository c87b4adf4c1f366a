package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cup-tournament/internal/platform/clock"
	idgen "github.com/riskibarqy/cup-tournament/internal/platform/id"
	"github.com/riskibarqy/cup-tournament/internal/platform/logging"
	"github.com/riskibarqy/cup-tournament/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Warnings   []googleWarning  `json:"warnings"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, rules roster.Rules) http.Handler {
	t.Helper()

	store := memory.NewStore()
	ids := idgen.NewSequenceGenerator("id")
	clk := clock.Fixed(time.Date(2026, 6, 14, 18, 30, 0, 0, time.UTC))
	logger := logging.NewNop()

	standings := usecase.NewStandingService(store.Tournaments, store.Groups, store.Teams, store.Matches)
	handler := NewHandler(Services{
		Tournaments: usecase.NewTournamentService(store.Tournaments, store.Groups, store.Teams, store.Matches, ids, clk, logger, 2),
		Results: usecase.NewMatchResultService(
			store.Matches, store.Teams, store.Scorers, store.Goalkeepers, store.GoalkeeperStats, ids, clk, logger,
		),
		Standings: standings,
		Knockout: usecase.NewKnockoutService(
			store.Tournaments, store.Groups, store.Teams, store.Knockout, standings,
			store.Scorers, store.Goalkeepers, store.GoalkeeperStats, ids, clk, logger,
		),
		Rosters: usecase.NewRosterService(store.Teams, store.Rosters, rules, ids, clk, logger),
		Stats:   usecase.NewStatsService(store.Teams, store.Scorers, store.Goalkeepers, store.GoalkeeperStats, nil),
	}, logger)

	return NewRouter(handler, logger, []string{"*"})
}

func doRequest[T any](t *testing.T, router http.Handler, method, path, body string) (int, envelope[T]) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %s %s response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, out
}

func createTournament(t *testing.T, router http.Handler) tournamentSetupDTO {
	t.Helper()

	status, resp := doRequest[tournamentSetupDTO](t, router, http.MethodPost, "/v1/tournaments", `{"name":"Torneo Estivo","year":2026}`)
	require.Equal(t, http.StatusCreated, status)
	require.Nil(t, resp.Error)
	return resp.Data
}

func playGroupsHomeWins(t *testing.T, router http.Handler, setup tournamentSetupDTO) {
	t.Helper()

	for _, g := range setup.Groups {
		for _, m := range g.Matches {
			status, resp := doRequest[matchDTO](t, router, http.MethodPut, "/v1/matches/"+m.ID+"/result", `{"home_score":1,"away_score":0}`)
			require.Equal(t, http.StatusOK, status, "match %s: %+v", m.ID, resp.Error)
		}
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())
	status, resp := doRequest[map[string]string](t, router, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "2.0", resp.APIVersion)
	require.Equal(t, "ok", resp.Data["status"])
}

func TestRouter_CreateTournamentBuildsGroups(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())
	setup := createTournament(t, router)

	require.Equal(t, "Torneo Estivo", setup.Tournament.Name)
	require.Len(t, setup.Groups, 4)
	for i, g := range setup.Groups {
		require.Equal(t, string(rune('A'+i)), g.Label)
		require.Len(t, g.Teams, 4)
		require.Len(t, g.Matches, 6)
	}

	status, list := doRequest[[]tournamentDTO](t, router, http.MethodGet, "/v1/tournaments", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Data, 1)

	status, groups := doRequest[[]groupDTO](t, router, http.MethodGet, "/v1/tournaments/"+setup.Tournament.ID+"/groups", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, groups.Data, 4)
}

func TestRouter_CreateTournamentValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())

	cases := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"year":2026}`},
		{name: "year out of range", body: `{"name":"Cup","year":12}`},
		{name: "unknown field", body: `{"name":"Cup","year":2026,"extra":true}`},
		{name: "not json", body: `{`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := doRequest[any](t, router, http.MethodPost, "/v1/tournaments", tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, resp.Error)
			require.Equal(t, "INVALID_ARGUMENT", resp.Error.Status)
		})
	}
}

func TestRouter_UnknownResourcesAreNotFound(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())

	status, resp := doRequest[any](t, router, http.MethodGet, "/v1/tournaments/missing", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", resp.Error.Status)

	status, resp = doRequest[any](t, router, http.MethodPut, "/v1/matches/missing/result", `{"home_score":1,"away_score":1}`)
	require.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)

	status, _ = doRequest[any](t, router, http.MethodGet, "/v1/nowhere", "")
	require.Equal(t, http.StatusNotFound, status)
}

func TestRouter_GroupResultUpdatesStandings(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())
	setup := createTournament(t, router)
	groupA := setup.Groups[0]
	first := groupA.Matches[0]

	status, resp := doRequest[matchDTO](t, router, http.MethodPut, "/v1/matches/"+first.ID+"/result",
		`{"home_score":3,"away_score":1,"scorers_home":"Rossi-2;Verdi-1","scorers_away":"Bianchi-1"}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Data.HomeScore)
	require.Equal(t, 3, *resp.Data.HomeScore)
	require.NotNil(t, resp.Data.PlayedAt)

	status, table := doRequest[groupStandingDTO](t, router, http.MethodGet, "/v1/groups/"+groupA.ID+"/standings", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, table.Data.Rows, 4)
	top := table.Data.Rows[0]
	require.Equal(t, first.HomeTeamID, top.TeamID)
	require.Equal(t, 3, top.Points)
	require.Equal(t, 2, top.GoalDifference)

	status, scorers := doRequest[[]topScorerDTO](t, router, http.MethodGet, "/v1/stats/topscorers?limit=1", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, scorers.Data, 1)
	require.Equal(t, "Rossi", scorers.Data[0].PlayerName)
	require.Equal(t, 2, scorers.Data[0].Goals)
}

func TestRouter_GroupResultRejectsBadInput(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())
	setup := createTournament(t, router)
	matchID := setup.Groups[0].Matches[0].ID

	status, resp := doRequest[any](t, router, http.MethodPut, "/v1/matches/"+matchID+"/result", `{"home_score":-1,"away_score":0}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalidInput", resp.Error.Errors[0].Reason)

	status, resp = doRequest[any](t, router, http.MethodPut, "/v1/matches/"+matchID+"/result", `{"home_score":1,"away_score":0,"scorers_home":"Rossi"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalidScorers", resp.Error.Errors[0].Reason)
}

func TestRouter_RosterLimits(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.Rules{MaxPlayers: 2, MaxFIGC: 1})
	setup := createTournament(t, router)
	teamID := setup.Groups[0].Teams[0].ID
	path := "/v1/teams/" + teamID + "/roster"

	status, member := doRequest[rosterMemberDTO](t, router, http.MethodPost, path,
		`{"name":"Mario Rossi","birth_date":"2001-04-09","is_figc":true,"figc_category":"Eccellenza","jersey_number":9}`)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "2001-04-09", *member.Data.BirthDate)

	status, resp := doRequest[any](t, router, http.MethodPost, path, `{"name":"Luca Verdi","is_figc":true,"figc_category":"Promozione"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalidRoster", resp.Error.Errors[0].Reason)

	status, _ = doRequest[rosterMemberDTO](t, router, http.MethodPost, path, `{"name":"Luca Verdi"}`)
	require.Equal(t, http.StatusCreated, status)

	status, resp = doRequest[any](t, router, http.MethodPost, path, `{"name":"Paolo Neri"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalidRoster", resp.Error.Errors[0].Reason)

	status, list := doRequest[[]rosterMemberDTO](t, router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Data, 2)

	status, _ = doRequest[any](t, router, http.MethodPut, path+"/"+member.Data.PlayerID+"/captain", "")
	require.Equal(t, http.StatusOK, status)

	_, list = doRequest[[]rosterMemberDTO](t, router, http.MethodGet, path, "")
	for _, m := range list.Data {
		require.Equal(t, m.PlayerID == member.Data.PlayerID, m.IsCaptain)
	}
}

func TestRouter_KnockoutFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, roster.DefaultRules())
	setup := createTournament(t, router)
	base := "/v1/tournaments/" + setup.Tournament.ID

	status, phases := doRequest[[]knockoutPhaseDTO](t, router, http.MethodPost, base+"/knockout/phases", "")
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, phases.Data, 4)

	status, again := doRequest[[]knockoutPhaseDTO](t, router, http.MethodPost, base+"/knockout/phases", "")
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, phases.Data[0].ID, again.Data[0].ID)

	playGroupsHomeWins(t, router, setup)

	status, seeded := doRequest[[]knockoutMatchDTO](t, router, http.MethodPost, base+"/knockout/qualify", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, seeded.Data, 4)

	_, bracket := doRequest[[]knockoutPhaseDTO](t, router, http.MethodGet, base+"/knockout", "")
	require.Equal(t, "quarterfinals", bracket.Data[0].Type)
	qf1 := bracket.Data[0].Matches[0]
	require.NotNil(t, qf1.HomeTeamID)
	require.NotNil(t, qf1.AwayTeamID)

	resultPath := "/v1/knockout/matches/" + qf1.ID + "/result"
	status, resp := doRequest[any](t, router, http.MethodPut, resultPath, `{"home_score":1,"away_score":1}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalidPenalties", resp.Error.Errors[0].Reason)

	status, result := doRequest[knockoutResultDTO](t, router, http.MethodPut, resultPath,
		`{"home_score":1,"away_score":1,"home_penalties":3,"away_penalties":4}`)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, result.Warnings)
	require.NotNil(t, result.Data.Match.WinnerID)
	require.Equal(t, *qf1.AwayTeamID, *result.Data.Match.WinnerID)
	require.Len(t, result.Data.Assignments, 1)
	require.Equal(t, "home", result.Data.Assignments[0].Side)
	require.Equal(t, *qf1.AwayTeamID, result.Data.Assignments[0].TeamID)

	_, bracket = doRequest[[]knockoutPhaseDTO](t, router, http.MethodGet, base+"/knockout", "")
	require.Equal(t, "semifinals", bracket.Data[1].Type)
	sf1 := bracket.Data[1].Matches[0]
	require.NotNil(t, sf1.HomeTeamID)
	require.Equal(t, *qf1.AwayTeamID, *sf1.HomeTeamID)
	require.Nil(t, sf1.AwayTeamID)

	status, keepers := doRequest[[]goalkeeperRankingDTO](t, router, http.MethodGet, "/v1/stats/goalkeepers", "")
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, keepers.Data)
}
