package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cup-tournament/internal/domain/roster"
	"github.com/riskibarqy/cup-tournament/internal/infrastructure/repository/memory"
)

func TestRosterService_AddPlayerQuotas(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setup := env.setup(t)
	ctx := context.Background()
	teamID := setup.Groups[0].Teams[0].ID

	for i := 0; i < 3; i++ {
		_, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{
			TeamID:       teamID,
			Name:         fmt.Sprintf("Figc %d", i),
			IsFIGC:       true,
			FIGCCategory: "Allievi",
		})
		require.NoError(t, err)
	}

	_, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{
		TeamID: teamID, Name: "Figc 4", IsFIGC: true, FIGCCategory: "Allievi",
	})
	require.ErrorIs(t, err, roster.ErrFIGCQuotaExceeded)
	require.ErrorIs(t, err, ErrInvalidInput)

	for i := 0; i < 7; i++ {
		_, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{TeamID: teamID, Name: fmt.Sprintf("Player %d", i)})
		require.NoError(t, err)
	}

	_, err = env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{TeamID: teamID, Name: "Eleventh"})
	require.ErrorIs(t, err, roster.ErrRosterFull)

	members, err := env.rosters.ListRoster(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, members, 10)
}

func TestRosterService_FIGCNeedsCategory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setup := env.setup(t)

	_, err := env.rosters.AddPlayerToTeam(context.Background(), AddPlayerInput{
		TeamID: setup.Groups[0].Teams[0].ID,
		Name:   "Rossi",
		IsFIGC: true,
	})
	require.ErrorIs(t, err, roster.ErrFIGCCategoryRequired)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRosterService_UnknownTeam(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.rosters.AddPlayerToTeam(context.Background(), AddPlayerInput{TeamID: "nope", Name: "Rossi"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRosterService_PartialWriteThenReconcile(t *testing.T) {
	t.Parallel()

	shared := memory.NewRosterRepository()
	env := newTestEnv(t, withRosterRepo(failingLinkRepo{shared}))
	setup := env.setup(t)
	ctx := context.Background()
	teamID := setup.Groups[1].Teams[2].ID

	_, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{TeamID: teamID, Name: "Rossi"})
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.ErrorIs(t, err, ErrPartialWrite)
	require.Equal(t, stepLinkRoster, writeErr.Step)
	require.Equal(t, stepCreatePlayer, writeErr.LastCompleted())

	members, err := shared.ListByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Empty(t, members)

	orphanID := writeErr.Keys["player_id"]
	_, ok, err := shared.GetPlayer(ctx, orphanID)
	require.NoError(t, err)
	require.True(t, ok, "player row stays after the failed link")

	// Link the orphan with a service whose store works again.

	fixed := NewRosterService(env.store.Teams, shared, roster.DefaultRules(), nil, nil, nil)
	fixed.idGen = stubID("entry-1")
	member, err := fixed.LinkPlayer(ctx, LinkPlayerInput{TeamID: teamID, PlayerID: orphanID})
	require.NoError(t, err)
	require.Equal(t, "Rossi", member.Player.Name)

	again, err := fixed.LinkPlayer(ctx, LinkPlayerInput{TeamID: teamID, PlayerID: orphanID})
	require.NoError(t, err)
	require.Equal(t, member.Entry.ID, again.Entry.ID)

	_, err = fixed.LinkPlayer(ctx, LinkPlayerInput{TeamID: setup.Groups[0].Teams[0].ID, PlayerID: orphanID})
	require.ErrorIs(t, err, ErrConflict)
}

func TestRosterService_SetCaptain(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	setup := env.setup(t)
	ctx := context.Background()
	teamID := setup.Groups[3].Teams[1].ID

	first, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{TeamID: teamID, Name: "Rossi", IsCaptain: true})
	require.NoError(t, err)
	second, err := env.rosters.AddPlayerToTeam(ctx, AddPlayerInput{TeamID: teamID, Name: "Verdi"})
	require.NoError(t, err)

	require.NoError(t, env.rosters.SetCaptain(ctx, teamID, second.Player.ID))
	require.ErrorIs(t, env.rosters.SetCaptain(ctx, teamID, "ghost"), ErrNotFound)

	members, err := env.rosters.ListRoster(ctx, teamID)
	require.NoError(t, err)
	for _, m := range members {
		require.Equal(t, m.Player.ID == second.Player.ID, m.Entry.IsCaptain, m.Player.Name)
	}
	require.NotEqual(t, first.Player.ID, second.Player.ID)
}

type stubID string

func (s stubID) NewID() (string, error) {
	return string(s), nil
}
