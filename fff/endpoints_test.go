package fff

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{MatchEntitiesPath(28541157), "/api/match_entities/28541157.json"},
		{MatchSheetPath(1), "/api/match_feuilles/1.json"},
		{ClubPath(500650), "/api/clubs/500650.json"},
		{ClubTeamsPath(2), "/api/clubs/2/equipes.json"},
		{CompetitionPath(3), "/api/competitions/3.json"},
		{CompetitionPoolsPath(3, 1), "/api/competitions/3/phases/1/poules.json"},
		{StandingsPath(3, 1, 2), "/api/competitions/3/phases/1/poules/2/classement.json"},
		{SchedulePath(3, 1, 2), "/api/competitions/3/phases/1/poules/2/calendrier.json"},
		{TeamPath(4), "/api/equipes/4.json"},
		{TeamRosterPath(4), "/api/equipes/4/effectif.json"},
		{TeamMatchesPath(4), "/api/equipes/4/matchs.json"},
		{PlayerPath(5), "/api/joueurs/5.json"},
		{RefereePath(6), "/api/arbitres/6.json"},
		{VenuePath(7), "/api/terrains/7.json"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}
}

func TestEndpoints(t *testing.T) {
	eps := Endpoints()
	require.Len(t, eps, 14)
	assert.True(t, sort.SliceIsSorted(eps, func(i, j int) bool { return eps[i].Name < eps[j].Name }))

	for _, ep := range eps {
		assert.NotEmpty(t, ep.Description, ep.Name)
		assert.NotNil(t, ep.Build, ep.Name)
	}

	player, ok := LookupEndpoint("player")
	require.True(t, ok)
	referee, ok := LookupEndpoint("referee")
	require.True(t, ok)
	assert.NotEqual(t, player.Build(PathParams{ID: 1}), referee.Build(PathParams{ID: 1}))

	standings, ok := LookupEndpoint("standings")
	require.True(t, ok)
	assert.True(t, standings.UsesPhase)
	assert.True(t, standings.UsesPool)
	assert.Equal(t, "/api/competitions/10/phases/2/poules/3/classement.json",
		standings.Build(PathParams{ID: 10, Phase: 2, Pool: 3}))

	_, ok = LookupEndpoint("nope")
	assert.False(t, ok)
}
