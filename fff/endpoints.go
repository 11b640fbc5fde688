package fff

import (
	"fmt"
	"sort"
)

// MatchEntitiesPath returns the path of a match with its teams, officials,
// competition, phase, pool, matchday and venue.
func MatchEntitiesPath(matchNumber int64) string {
	return fmt.Sprintf("/api/match_entities/%d.json", matchNumber)
}

// MatchSheetPath returns the path of a match sheet (line-ups and events).
func MatchSheetPath(matchNumber int64) string {
	return fmt.Sprintf("/api/match_feuilles/%d.json", matchNumber)
}

// ClubPath returns the path of a club.
func ClubPath(clubNumber int64) string {
	return fmt.Sprintf("/api/clubs/%d.json", clubNumber)
}

// ClubTeamsPath returns the path listing every team of a club.
func ClubTeamsPath(clubNumber int64) string {
	return fmt.Sprintf("/api/clubs/%d/equipes.json", clubNumber)
}

// CompetitionPath returns the path of a competition.
func CompetitionPath(competitionNumber int64) string {
	return fmt.Sprintf("/api/competitions/%d.json", competitionNumber)
}

// CompetitionPoolsPath returns the path listing the pools of a competition phase.
func CompetitionPoolsPath(competitionNumber, phase int64) string {
	return fmt.Sprintf("/api/competitions/%d/phases/%d/poules.json", competitionNumber, phase)
}

// StandingsPath returns the path of a pool's standings.
func StandingsPath(competitionNumber, phase, pool int64) string {
	return fmt.Sprintf("/api/competitions/%d/phases/%d/poules/%d/classement.json", competitionNumber, phase, pool)
}

// SchedulePath returns the path of a pool's fixtures and results.
func SchedulePath(competitionNumber, phase, pool int64) string {
	return fmt.Sprintf("/api/competitions/%d/phases/%d/poules/%d/calendrier.json", competitionNumber, phase, pool)
}

// TeamPath returns the path of a team.
func TeamPath(teamNumber int64) string {
	return fmt.Sprintf("/api/equipes/%d.json", teamNumber)
}

// TeamRosterPath returns the path of a team's squad.
func TeamRosterPath(teamNumber int64) string {
	return fmt.Sprintf("/api/equipes/%d/effectif.json", teamNumber)
}

// TeamMatchesPath returns the path of a team's past and upcoming matches.
func TeamMatchesPath(teamNumber int64) string {
	return fmt.Sprintf("/api/equipes/%d/matchs.json", teamNumber)
}

// PlayerPath returns the path of a player, by licence number.
func PlayerPath(licenceNumber int64) string {
	return fmt.Sprintf("/api/joueurs/%d.json", licenceNumber)
}

// RefereePath returns the path of a referee, by licence number.
func RefereePath(refereeNumber int64) string {
	return fmt.Sprintf("/api/arbitres/%d.json", refereeNumber)
}

// VenuePath returns the path of a pitch.
func VenuePath(venueNumber int64) string {
	return fmt.Sprintf("/api/terrains/%d.json", venueNumber)
}

// PathParams are the numbers an endpoint path may need. Phase and Pool are
// only read by competition endpoints.
type PathParams struct {
	ID    int64
	Phase int64
	Pool  int64
}

// Endpoint describes one entry of the endpoint catalog.
type Endpoint struct {
	Name        string
	Description string
	// UsesPhase and UsesPool tell whether Build reads those params.
	UsesPhase bool
	UsesPool  bool
	Build     func(p PathParams) string
}

var endpoints = map[string]Endpoint{
	"match": {
		Name:        "match",
		Description: "match with teams, officials, competition and venue",
		Build:       func(p PathParams) string { return MatchEntitiesPath(p.ID) },
	},
	"match-sheet": {
		Name:        "match-sheet",
		Description: "match sheet: line-ups, goals, cards, substitutions",
		Build:       func(p PathParams) string { return MatchSheetPath(p.ID) },
	},
	"club": {
		Name:        "club",
		Description: "club details, district, contacts and pitches",
		Build:       func(p PathParams) string { return ClubPath(p.ID) },
	},
	"club-teams": {
		Name:        "club-teams",
		Description: "every team of a club",
		Build:       func(p PathParams) string { return ClubTeamsPath(p.ID) },
	},
	"competition": {
		Name:        "competition",
		Description: "competition name, season, level and organizer",
		Build:       func(p PathParams) string { return CompetitionPath(p.ID) },
	},
	"pools": {
		Name:        "pools",
		Description: "pools of a competition phase",
		UsesPhase:   true,
		Build:       func(p PathParams) string { return CompetitionPoolsPath(p.ID, p.Phase) },
	},
	"standings": {
		Name:        "standings",
		Description: "pool standings",
		UsesPhase:   true,
		UsesPool:    true,
		Build:       func(p PathParams) string { return StandingsPath(p.ID, p.Phase, p.Pool) },
	},
	"schedule": {
		Name:        "schedule",
		Description: "pool fixtures and results",
		UsesPhase:   true,
		UsesPool:    true,
		Build:       func(p PathParams) string { return SchedulePath(p.ID, p.Phase, p.Pool) },
	},
	"team": {
		Name:        "team",
		Description: "team details and engagements",
		Build:       func(p PathParams) string { return TeamPath(p.ID) },
	},
	"roster": {
		Name:        "roster",
		Description: "team squad",
		Build:       func(p PathParams) string { return TeamRosterPath(p.ID) },
	},
	"team-matches": {
		Name:        "team-matches",
		Description: "team match history and fixtures",
		Build:       func(p PathParams) string { return TeamMatchesPath(p.ID) },
	},
	"player": {
		Name:        "player",
		Description: "player by licence number",
		Build:       func(p PathParams) string { return PlayerPath(p.ID) },
	},
	"referee": {
		Name:        "referee",
		Description: "referee by licence number",
		Build:       func(p PathParams) string { return RefereePath(p.ID) },
	},
	"venue": {
		Name:        "venue",
		Description: "pitch address, surface and coordinates",
		Build:       func(p PathParams) string { return VenuePath(p.ID) },
	},
}

// LookupEndpoint returns the catalog entry with the given name.
func LookupEndpoint(name string) (Endpoint, bool) {
	ep, ok := endpoints[name]
	return ep, ok
}

// Endpoints returns the catalog sorted by name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
