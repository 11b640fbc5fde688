package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/fffdata/fff"
)

// ConsoleFormatter renders matches and clubs as trees
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatMatchList formats a list of matches for console display
func (f *ConsoleFormatter) FormatMatchList(matches []*fff.Match) string {
	if len(matches) == 0 {
		return "No matches found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Match", "Matches", len(matches))

	for i, m := range matches {
		isLast := i == len(matches)-1
		prefix, indent := branch(isLast)

		title := m.Label()
		if m.ID != nil {
			title = fmt.Sprintf("%d: %s", *m.ID, title)
		}
		fmt.Fprintf(&sb, "%s %s\n", prefix, title)

		// Competition
		var comp []string
		if m.Competition.Name != "" {
			comp = append(comp, m.Competition.Name)
		}
		if m.Phase.Name != "" {
			comp = append(comp, m.Phase.Name)
		}
		if m.Poule.Name != "" {
			comp = append(comp, m.Poule.Name)
		}
		if m.PouleJournee.Name != "" {
			comp = append(comp, m.PouleJournee.Name)
		}
		if len(comp) > 0 {
			fmt.Fprintf(&sb, "%sCompetition: %s\n", indent, strings.Join(comp, " | "))
		}

		// Date and status
		if when := matchDate(m); when != "" {
			fmt.Fprintf(&sb, "%sDate: %s\n", indent, when)
		}
		status := "Scheduled"
		if m.IsFinished() {
			status = fmt.Sprintf("Played (%s)", m.Score())
		}
		if m.StatusLabel != "" {
			status += " - " + m.StatusLabel
		}
		fmt.Fprintf(&sb, "%sStatus: %s\n", indent, status)

		// Venue
		if m.Terrain != nil && m.Terrain.Name != "" {
			venue := m.Terrain.Name
			if m.Terrain.City != nil && *m.Terrain.City != "" {
				venue += ", " + *m.Terrain.City
			}
			fmt.Fprintf(&sb, "%sVenue: %s\n", indent, venue)
		}

		// Officials
		if ref := m.PrincipalReferee(); ref != nil {
			fmt.Fprintf(&sb, "%sReferee: %s\n", indent, ref.FullName())
		}
		if n := len(m.Officials); n > 1 {
			fmt.Fprintf(&sb, "%sOfficials: %d\n", indent, n)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatClubList formats a list of clubs for console display
func (f *ConsoleFormatter) FormatClubList(clubs []*fff.Club) string {
	if len(clubs) == 0 {
		return "No clubs found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Club", "Clubs", len(clubs))

	for i, c := range clubs {
		isLast := i == len(clubs)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s %s\n", prefix, c.String())

		if c.District != nil && c.District.Name != "" {
			fmt.Fprintf(&sb, "%sDistrict: %s\n", indent, c.District.Name)
		}
		if addr := c.FullAddress(); addr != "" {
			fmt.Fprintf(&sb, "%sAddress: %s\n", indent, addr)
		}
		if phones := c.PhoneNumbers(); len(phones) > 0 {
			fmt.Fprintf(&sb, "%sPhone: %s\n", indent, strings.Join(phones, ", "))
		}
		if c.Colors != nil && *c.Colors != "" {
			fmt.Fprintf(&sb, "%sColors: %s\n", indent, *c.Colors)
		}
		for _, t := range c.Terrains {
			pitch := t.Name
			if t.City != nil && *t.City != "" {
				pitch += ", " + *t.City
			}
			if t.Surface != nil && *t.Surface != "" {
				pitch += " (" + *t.Surface + ")"
			}
			fmt.Fprintf(&sb, "%sPitch: %s\n", indent, pitch)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatNotFound lists the numbers the API had nothing for
func (f *ConsoleFormatter) FormatNotFound(resource string, ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "%s %d: not found\n", resource, id)
	}
	return sb.String()
}

func writeHeader(sb *strings.Builder, singular, plural string, n int) {
	name := plural
	if n == 1 {
		name = singular
	}
	fmt.Fprintf(sb, "\n%s (%d):\n\n", name, n)
}

// branch returns the tree prefix of an item and the indent of its details
func branch(isLast bool) (string, string) {
	if isLast {
		return "╰──", "    "
	}
	return "├──", "│   "
}

func matchDate(m *fff.Match) string {
	date := m.Date
	if len(date) >= len("2006-01-02") {
		date = date[:len("2006-01-02")]
	}
	if m.Time == "" {
		return date
	}
	if date == "" {
		return m.Time
	}
	return date + " " + m.Time
}

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
