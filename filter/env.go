package filter

import (
	"strings"
	"time"
	"unicode"

	"github.com/s0up4200/fffdata/fff"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind is the entity type a filter is evaluated against
type Kind int

const (
	KindMatch Kind = iota
	KindClub
)

func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindClub:
		return "club"
	default:
		return "unknown"
	}
}

// Kinds lists every entity type filters can target
var Kinds = []Kind{KindMatch, KindClub}

// dateLayouts are the date formats found in API payloads
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fold strips accents and case so "Étoile" and "ETOILE" compare equal
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return cases.Fold().String(s)
}

// addHelperFunctions adds the entity-independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = parseDate
	// String helpers, accent and case insensitive
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(fold(str), fold(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(fold(str), fold(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(fold(str), fold(suffix))
	}
	env["fold"] = fold
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// matchEnv creates the evaluation environment of a match
func matchEnv(m *fff.Match) map[string]any {
	env := make(map[string]any, 40)
	addHelperFunctions(env)

	env["Match"] = m

	var referee string
	if r := m.PrincipalReferee(); r != nil {
		referee = r.FullName()
	}
	var venue, city string
	if m.Terrain != nil {
		venue = m.Terrain.Name
		if m.Terrain.City != nil {
			city = *m.Terrain.City
		}
	}

	env["ID"] = valueOr(m.ID)
	env["Home"] = m.Home.ShortName
	env["Away"] = m.Away.ShortName
	env["HomeScore"] = m.HomeScore
	env["AwayScore"] = m.AwayScore
	env["Goals"] = m.GoalCount
	env["Status"] = m.Status
	env["Finished"] = m.IsFinished()
	env["Forfeit"] = m.HomeForfeit == "O" || m.AwayForfeit == "O"
	env["Competition"] = m.Competition.Name
	env["Level"] = m.Competition.Level
	env["Phase"] = m.Phase.Name
	env["Pool"] = m.Poule.Name
	env["Matchday"] = valueOr(m.PouleJournee.Number)
	env["Season"] = valueOr(m.Season)
	env["Date"] = parseDate(m.Date)
	env["Time"] = m.Time
	env["Referee"] = referee
	env["Venue"] = venue
	env["City"] = city

	officials := m.Officials
	env["officiatedBy"] = func(name string) bool {
		for i := range officials {
			if strings.Contains(fold(officials[i].FullName()), fold(name)) {
				return true
			}
		}
		return false
	}
	env["hasOfficial"] = func(positionCode string) bool {
		for i := range officials {
			if strings.EqualFold(officials[i].PositionCode, positionCode) {
				return true
			}
		}
		return false
	}

	return env
}

// clubEnv creates the evaluation environment of a club
func clubEnv(c *fff.Club) map[string]any {
	env := make(map[string]any, 40)
	addHelperFunctions(env)

	env["Club"] = c

	var district string
	if c.District != nil {
		district = c.District.Name
	}
	var lat, lon float64
	if c.Latitude != nil {
		lat = *c.Latitude
	}
	if c.Longitude != nil {
		lon = *c.Longitude
	}

	phones := c.PhoneNumbers()

	env["ID"] = valueOr(c.ID)
	env["Name"] = c.Name
	env["ShortName"] = c.ShortName
	env["Location"] = c.Location
	env["District"] = district
	env["Department"] = stringOr(c.DepartmentCode)
	env["PostalCode"] = stringOr(c.PostalCode)
	env["Address"] = c.FullAddress()
	env["Colors"] = stringOr(c.Colors)
	env["Phones"] = phones
	env["TerrainCount"] = len(c.Terrains)
	env["Latitude"] = lat
	env["Longitude"] = lon

	terrains := c.Terrains
	env["hasPhone"] = func() bool {
		return len(phones) > 0
	}
	env["hasTerrainIn"] = func(city string) bool {
		for i := range terrains {
			if terrains[i].City != nil && fold(*terrains[i].City) == fold(city) {
				return true
			}
		}
		return false
	}

	return env
}

// envFor returns the environment of v for the given kind. Compilation uses
// zero-valued entities so expressions are type-checked against real fields.
func envFor(kind Kind, v any) map[string]any {
	switch kind {
	case KindClub:
		c, _ := v.(*fff.Club)
		if c == nil {
			c = &fff.Club{}
		}
		return clubEnv(c)
	default:
		m, _ := v.(*fff.Match)
		if m == nil {
			m = &fff.Match{}
		}
		return matchEnv(m)
	}
}

func valueOr(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func stringOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
