package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fffdata/fff"
)

func int64Ptr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func TestConsoleFormatter_FormatMatchList(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No matches found\n", f.FormatMatchList(nil))

	out := f.FormatMatchList([]*fff.Match{
		{
			ID:          int64Ptr(1),
			Home:        fff.Team{ShortName: "PARIS FC"},
			Away:        fff.Team{ShortName: "RED STAR"},
			Competition: fff.Competition{Name: "REGIONAL 1"},
			Poule:       fff.Poule{Name: "Poule B"},
			Status:      fff.StatusPlayed,
			Date:        "2024-09-14T00:00:00+00:00",
			Time:        "15H00",
			HomeScore:   3,
			Terrain:     &fff.TerrainMatch{Name: "STADE CHARLETY", City: strPtr("PARIS")},
		},
		{
			Home: fff.Team{ShortName: "A"},
			Away: fff.Team{ShortName: "B"},
		},
	})

	want := "\nMatches (2):\n\n" +
		"├── 1: PARIS FC vs RED STAR\n" +
		"│   Competition: REGIONAL 1 | Poule B\n" +
		"│   Date: 2024-09-14 15H00\n" +
		"│   Status: Played (3 - 0)\n" +
		"│   Venue: STADE CHARLETY, PARIS\n" +
		"│\n" +
		"╰── A vs B\n" +
		"    Status: Scheduled\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestConsoleFormatter_FormatClubList(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No clubs found\n", f.FormatClubList(nil))

	out := f.FormatClubList([]*fff.Club{{
		ID:                int64Ptr(500650),
		Name:              "PARIS FC",
		Location:          "PARIS",
		District:          &fff.District{Name: "DISTRICT DE PARIS"},
		Address1:          strPtr("Stade Charléty"),
		PostalCode:        strPtr("75013"),
		DistributorOffice: strPtr("PARIS"),
		Contacts:          []fff.Contact{{Type: "TEL", Value: "01 02 03 04 05"}, {Type: "MAIL", Value: "x@y.fr"}},
		Terrains:          []fff.Terrain{{Name: "STADE CHARLETY", Surface: strPtr("Herbe")}},
	}})

	want := "\nClub (1):\n\n" +
		"╰── Club 500650: PARIS FC (PARIS)\n" +
		"    District: DISTRICT DE PARIS\n" +
		"    Address: Stade Charléty, 75013 PARIS\n" +
		"    Phone: 01 02 03 04 05\n" +
		"    Pitch: STADE CHARLETY (Herbe)\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestConsoleFormatter_FormatNotFound(t *testing.T) {
	f := NewConsoleFormatter()
	assert.Empty(t, f.FormatNotFound("match", nil))
	assert.Equal(t, "match 3: not found\nmatch 6: not found\n", f.FormatNotFound("match", []int64{3, 6}))
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, []any{"PARIS FC", 12, map[string]any{"a": nil}}, true))
	assert.Equal(t, "PARIS FC\n12\n{\n  \"a\": null\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, writeResults(&buf, []any{"PARIS FC"}, false))
	assert.Equal(t, "\"PARIS FC\"\n", buf.String())
}

func TestPathTemplate(t *testing.T) {
	ep, ok := fff.LookupEndpoint("pools")
	require.True(t, ok)
	assert.Equal(t, "/api/competitions/{id}/phases/{phase}/poules.json", pathTemplate(ep))

	ep, ok = fff.LookupEndpoint("referee")
	require.True(t, ok)
	assert.Equal(t, "/api/arbitres/{id}.json", pathTemplate(ep))
}
