package fff

import (
	"fmt"
)

// Status and position codes used by the API
const (
	// StatusPlayed marks a match whose result has been recorded
	StatusPlayed = "A"
	// PositionCentralReferee is the po_cod of the main referee
	PositionCentralReferee = "AC"
)

// CDG represents the body organizing a competition (district or league committee)
type CDG struct {
	ID                *int64  `json:"cg_no"`
	Name              string  `json:"name"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// CDGFromObject builds a CDG from its JSON object
func CDGFromObject(o Object) CDG {
	return CDG{
		ID:                o.OptInt("cg_no"),
		Name:              o.String("name", ""),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// Competition represents a competition
type Competition struct {
	ID                *int64  `json:"cp_no"`
	Season            *int64  `json:"season"`
	Type              string  `json:"type"`
	Name              string  `json:"name"`
	Level             string  `json:"level"`
	CDG               *CDG    `json:"cdg"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// CompetitionFromObject builds a Competition from its JSON object
func CompetitionFromObject(o Object) Competition {
	comp := Competition{
		ID:                o.OptInt("cp_no"),
		Season:            o.OptInt("season"),
		Type:              o.String("type", ""),
		Name:              o.String("name", ""),
		Level:             o.String("level", ""),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
	if c, ok := o.Object("cdg"); ok {
		cdg := CDGFromObject(c)
		comp.CDG = &cdg
	}
	return comp
}

// Phase represents a phase of a competition
type Phase struct {
	Number            *int64  `json:"number"`
	Type              string  `json:"type"`
	Name              string  `json:"name"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// PhaseFromObject builds a Phase from its JSON object
func PhaseFromObject(o Object) Phase {
	return Phase{
		Number:            o.OptInt("number"),
		Type:              o.String("type", ""),
		Name:              o.String("name", ""),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// Poule represents a pool (group) of a competition phase
type Poule struct {
	StageNumber       *int64  `json:"stage_number"`
	Name              string  `json:"name"`
	Unique            bool    `json:"poule_unique"`
	HasResults        bool    `json:"at_least_one_match_resultat"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// PouleFromObject builds a Poule from its JSON object
func PouleFromObject(o Object) Poule {
	return Poule{
		StageNumber:       o.OptInt("stage_number"),
		Name:              o.String("name", ""),
		Unique:            o.Bool("poule_unique", false),
		HasResults:        o.Bool("at_least_one_match_resultat", false),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// PouleJournee represents a matchday of a pool
type PouleJournee struct {
	Number            *int64  `json:"number"`
	Name              string  `json:"name"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// PouleJourneeFromObject builds a PouleJournee from its JSON object
func PouleJourneeFromObject(o Object) PouleJournee {
	return PouleJournee{
		Number:            o.OptInt("number"),
		Name:              o.String("name", ""),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// ClubInfo is the reduced club reference embedded in a match team
type ClubInfo struct {
	ID                *int64  `json:"cl_no"`
	Logo              *string `json:"logo"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// ClubInfoFromObject builds a ClubInfo from its JSON object
func ClubInfoFromObject(o Object) ClubInfo {
	return ClubInfo{
		ID:                o.OptInt("cl_no"),
		Logo:              o.OptString("logo"),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// Team represents one side of a match. Engagements are passed through as
// returned by the API.
type Team struct {
	Club                *ClubInfo `json:"club"`
	CategoryCode        string    `json:"category_code"`
	CategoryLabel       string    `json:"category_label"`
	CategoryGender      string    `json:"category_gender"`
	Number              *int64    `json:"number"`
	Code                *int64    `json:"code"`
	ShortName           string    `json:"short_name"`
	ShortNameLigue      string    `json:"short_name_ligue"`
	ShortNameFederation string    `json:"short_name_federation"`
	Type                string    `json:"type"`
	Engagements         []any     `json:"engagements"`
	ExternalUpdatedAt   *string   `json:"external_updated_at"`
}

// TeamFromObject builds a Team from its JSON object. An empty object gives
// a zero-valued Team with a nil Club.
func TeamFromObject(o Object) Team {
	team := Team{
		CategoryCode:        o.String("category_code", ""),
		CategoryLabel:       o.String("category_label", ""),
		CategoryGender:      o.String("category_gender", ""),
		Number:              o.OptInt("number"),
		Code:                o.OptInt("code"),
		ShortName:           o.String("short_name", ""),
		ShortNameLigue:      o.String("short_name_ligue", ""),
		ShortNameFederation: o.String("short_name_federation", ""),
		Type:                o.String("type", ""),
		Engagements:         o.List("engagements"),
		ExternalUpdatedAt:   o.OptString("external_updated_at"),
	}
	if c, ok := o.Object("club"); ok {
		info := ClubInfoFromObject(c)
		team.Club = &info
	}
	return team
}

// TerrainMatch represents the pitch a match is played on
type TerrainMatch struct {
	ID                *int64  `json:"te_no"`
	Name              string  `json:"name"`
	Address           *string `json:"address"`
	ZipCode           *string `json:"zip_code"`
	City              *string `json:"city"`
	Surface           *string `json:"libelle_surface"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// TerrainMatchFromObject builds a TerrainMatch from its JSON object
func TerrainMatchFromObject(o Object) TerrainMatch {
	return TerrainMatch{
		ID:                o.OptInt("te_no"),
		Name:              o.String("name", ""),
		Address:           o.OptString("address"),
		ZipCode:           o.OptString("zip_code"),
		City:              o.OptString("city"),
		Surface:           o.OptString("libelle_surface"),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// MatchMembre represents a match official (referee, assistant, delegate)
type MatchMembre struct {
	ID                *int64  `json:"mm_no"`
	PositionCode      string  `json:"po_cod"`
	FirstName         string  `json:"prenom"`
	LastName          string  `json:"nom"`
	PositionLabel     string  `json:"label_position"`
	PositionOrder     *int64  `json:"position_ordre"`
	ExternalUpdatedAt *string `json:"external_updated_at"`
}

// MatchMembreFromObject builds a MatchMembre from its JSON object
func MatchMembreFromObject(o Object) MatchMembre {
	return MatchMembre{
		ID:                o.OptInt("mm_no"),
		PositionCode:      o.String("po_cod", ""),
		FirstName:         o.String("prenom", ""),
		LastName:          o.String("nom", ""),
		PositionLabel:     o.String("label_position", ""),
		PositionOrder:     o.OptInt("position_ordre"),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}
}

// FullName returns the first name followed by the last name
func (m *MatchMembre) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Match represents a football match as returned by /api/match_entities
type Match struct {
	ID           *int64        `json:"ma_no"`
	Competition  Competition   `json:"competition"`
	Phase        Phase         `json:"phase"`
	Poule        Poule         `json:"poule"`
	PouleJournee PouleJournee  `json:"poule_journee"`
	Home         Team          `json:"home"`
	Away         Team          `json:"away"`
	Season       *int64        `json:"season"`
	Status       string        `json:"status"`
	StatusLabel  string        `json:"status_label"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	HomeScore    int64         `json:"home_score"`
	AwayScore    int64         `json:"away_score"`
	HomeResult   string        `json:"home_resu"`
	AwayResult   string        `json:"away_resu"`
	GoalCount    int64         `json:"cr_nb_but"`
	Terrain      *TerrainMatch `json:"terrain"`
	InitialDate  *string       `json:"initial_date"`
	Leg          *string       `json:"ma_ar"`
	Reversed     *string       `json:"ma_inver"`
	Stopped      *string       `json:"ma_arret"`
	IsOvertime   *string       `json:"is_overtime"`

	HomeGoalsAgainst  int64  `json:"home_but_contre"`
	HomePoints        *int64 `json:"home_nb_point"`
	HomeShootoutGoals *int64 `json:"home_nb_tir_but"`
	HomePenaltyPoints int64  `json:"home_nb_point_pena"`
	HomeForfeit       string `json:"home_is_forfeit"`
	AwayGoalsAgainst  int64  `json:"away_but_contre"`
	AwayPoints        *int64 `json:"away_nb_point"`
	AwayShootoutGoals *int64 `json:"away_nb_tir_but"`
	AwayPenaltyPoints int64  `json:"away_nb_point_pena"`
	AwayForfeit       string `json:"away_is_forfeit"`
	SeemsPostponed    string `json:"seems_postponed"`

	Officials         []MatchMembre `json:"match_membres"`
	MatchSheet        *string       `json:"match_feuille"`
	ExternalUpdatedAt *string       `json:"external_updated_at"`
}

// MatchFromObject builds a Match from the /api/match_entities/{id}.json payload.
//
// Competition, phase, pool, matchday and both teams are always built, from
// an empty object when the key is missing. The terrain is only set when the
// payload carries a non-empty terrain object.
func MatchFromObject(o Object) *Match {
	m := &Match{
		ID:           o.OptInt("ma_no"),
		Competition:  CompetitionFromObject(o.ObjectOrEmpty("competition")),
		Phase:        PhaseFromObject(o.ObjectOrEmpty("phase")),
		Poule:        PouleFromObject(o.ObjectOrEmpty("poule")),
		PouleJournee: PouleJourneeFromObject(o.ObjectOrEmpty("poule_journee")),
		Home:         TeamFromObject(o.ObjectOrEmpty("home")),
		Away:         TeamFromObject(o.ObjectOrEmpty("away")),
		Season:       o.OptInt("season"),
		Status:       o.String("status", ""),
		StatusLabel:  o.String("status_label", ""),
		Date:         o.String("date", ""),
		Time:         o.String("time", ""),
		HomeScore:    o.Int("home_score", 0),
		AwayScore:    o.Int("away_score", 0),
		HomeResult:   o.String("home_resu", ""),
		AwayResult:   o.String("away_resu", ""),
		GoalCount:    o.Int("cr_nb_but", 0),
		InitialDate:  o.OptString("initial_date"),
		Leg:          o.OptString("ma_ar"),
		Reversed:     o.OptString("ma_inver"),
		Stopped:      o.OptString("ma_arret"),
		IsOvertime:   o.OptString("is_overtime"),

		HomeGoalsAgainst:  o.Int("home_but_contre", 0),
		HomePoints:        o.OptInt("home_nb_point"),
		HomeShootoutGoals: o.OptInt("home_nb_tir_but"),
		HomePenaltyPoints: o.Int("home_nb_point_pena", 0),
		HomeForfeit:       o.String("home_is_forfeit", "N"),
		AwayGoalsAgainst:  o.Int("away_but_contre", 0),
		AwayPoints:        o.OptInt("away_nb_point"),
		AwayShootoutGoals: o.OptInt("away_nb_tir_but"),
		AwayPenaltyPoints: o.Int("away_nb_point_pena", 0),
		AwayForfeit:       o.String("away_is_forfeit", "N"),
		SeemsPostponed:    o.String("seems_postponed", ""),

		MatchSheet:        o.OptString("match_feuille"),
		ExternalUpdatedAt: o.OptString("external_updated_at"),
	}

	if t, ok := o.Object("terrain"); ok {
		terrain := TerrainMatchFromObject(t)
		m.Terrain = &terrain
	}

	officials := o.Objects("match_membres")
	m.Officials = make([]MatchMembre, 0, len(officials))
	for _, mm := range officials {
		m.Officials = append(m.Officials, MatchMembreFromObject(mm))
	}

	return m
}

// Score returns the score as "home - away"
func (m *Match) Score() string {
	return fmt.Sprintf("%d - %d", m.HomeScore, m.AwayScore)
}

// Label returns "home vs away" using the teams' short names
func (m *Match) Label() string {
	return fmt.Sprintf("%s vs %s", m.Home.ShortName, m.Away.ShortName)
}

// PrincipalReferee returns the first official with the central referee
// position, or nil when there is none
func (m *Match) PrincipalReferee() *MatchMembre {
	for i := range m.Officials {
		if m.Officials[i].PositionCode == PositionCentralReferee {
			return &m.Officials[i]
		}
	}
	return nil
}

// IsFinished checks if the match result has been recorded
func (m *Match) IsFinished() bool {
	return m.Status == StatusPlayed
}

// String implements fmt.Stringer
func (m *Match) String() string {
	return fmt.Sprintf("Match %s: %s (%s)", formatID(m.ID), m.Label(), m.Score())
}
