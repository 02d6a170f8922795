package model

import "strings"

// Record is one decoded row of a given kind. All field values are optional:
// a nil pointer means the backend row had no value for that field.
type Record interface {
	// Kind returns the model kind this record belongs to.
	Kind() Kind
}

// Collection is the ordered concatenation of all pages of one fetch.
// Order follows the backend's stable ascending-ID sort and is preserved
// for display.
type Collection []Record

// Scorer is the overall scorer ranking entry.
type Scorer struct {
	Name  *string
	Team  *string
	Goals *int
}

// Kind implements Record.
func (Scorer) Kind() Kind { return KindScorer }

// ShortName derives a compact display name ("L. Messi") from the full name.
// Names with fewer than two whitespace-separated tokens are returned
// unchanged; an unset name yields the empty string.
func (s Scorer) ShortName() string {
	if s.Name == nil {
		return ""
	}
	return shortenName(*s.Name)
}

// TeamWeekScorer is one scorer's tally for a single team and match week.
type TeamWeekScorer struct {
	Name  *string
	Team  *string
	Week  *int
	Goals *int
}

// Kind implements Record.
func (TeamWeekScorer) Kind() Kind { return KindTeamWeekScorer }

// ShortName derives a compact display name, same rules as Scorer.ShortName.
func (s TeamWeekScorer) ShortName() string {
	if s.Name == nil {
		return ""
	}
	return shortenName(*s.Name)
}

func shortenName(full string) string {
	tokens := strings.Fields(full)
	if len(tokens) < 2 {
		return full
	}
	initial := []rune(tokens[0])[0]
	return string(initial) + ". " + tokens[len(tokens)-1]
}
