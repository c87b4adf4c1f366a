package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandingService_GroupStandings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setup := env.setup(t)
	env.playGroupsHomeWins(t, setup)
	ctx := context.Background()

	table, err := env.standings.GroupStandings(ctx, setup.Groups[1].Group.ID)
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)

	names := make([]string, 0, 4)
	points := make([]int, 0, 4)
	for _, row := range table.Rows {
		names = append(names, row.TeamName)
		points = append(points, row.Points)
	}
	require.Equal(t, []string{"Sq5", "Sq6", "Sq7", "Sq8"}, names)
	require.Equal(t, []int{9, 6, 3, 0}, points)

	again, err := env.standings.GroupStandings(ctx, setup.Groups[1].Group.ID)
	require.NoError(t, err)
	require.Equal(t, table, again)
}

func TestStandingService_TournamentStandings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setup := env.setup(t)

	all, err := env.standings.TournamentStandings(context.Background(), setup.Tournament.ID)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "A", all[0].Group.Label)
	require.Zero(t, all[0].Rows[0].Played)
}

func TestStandingService_UnknownGroup(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.standings.GroupStandings(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = env.standings.GroupStandings(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStandingService_UnknownTournament(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.setup(t)

	_, err := env.standings.TournamentStandings(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = env.standings.TournamentStandings(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
