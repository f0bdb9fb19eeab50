package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
	"unicode/utf8"

	"github.com/coopcast/flocktree/pkg/pedigree"
)

// Note truncation limits, in characters.
const (
	NotesNarrow = 40
	NotesWide   = 80
)

// DeceasedMarker flanks the name of a deceased individual.
const DeceasedMarker = "🪦"

// GenderEmoji returns the icon for a gender code. Anything other than
// "M" or "U" is drawn as a hen.
func GenderEmoji(gender string) string {
	switch gender {
	case pedigree.GenderMale:
		return "🐓"
	case pedigree.GenderUnknown:
		return "🥚"
	default:
		return "🐔"
	}
}

// GenderLabel returns the display label for a gender code.
func GenderLabel(gender string) string {
	switch gender {
	case pedigree.GenderMale:
		return "Rooster"
	case pedigree.GenderUnknown:
		return "Unknown"
	default:
		return "Hen"
	}
}

// TruncateNotes joins notes with "; " and cuts the result to 40 characters
// on narrow viewports or 80 otherwise, appending "..." when cut.
// It returns "" for no notes.
func TruncateNotes(notes []string, narrow bool) string {
	if len(notes) == 0 {
		return ""
	}
	text := strings.Join(notes, "; ")
	limit := NotesWide
	if narrow {
		limit = NotesNarrow
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}

// Card is the text content of one individual's card. Empty fields are
// not drawn.
type Card struct {
	Name   string `json:"name" bson:"name"`
	Gender string `json:"gender" bson:"gender"`
	Breed  string `json:"breed,omitempty" bson:"breed,omitempty"`
	Born   string `json:"born,omitempty" bson:"born,omitempty"`
	Death  string `json:"death,omitempty" bson:"death,omitempty"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// CardText builds the card lines for an individual.
func CardText(ind pedigree.Individual, narrow bool) Card {
	c := Card{
		Name:   ind.FullName,
		Gender: GenderEmoji(ind.Gender) + " " + GenderLabel(ind.Gender),
	}
	if ind.IsDeceased {
		c.Name = DeceasedMarker + " " + ind.FullName + " " + DeceasedMarker
		c.Death = DeceasedMarker
		if ind.DeathDate != "" {
			c.Death += " (" + ind.DeathDate + ")"
		}
	}
	if ind.Breed != "" {
		c.Breed = "🏆 " + ind.Breed
	}
	if ind.BirthDate != "" {
		if narrow {
			c.Born = "🎂 " + ind.BirthDate
		} else {
			c.Born = "🎂 Born: " + ind.BirthDate
		}
	}
	if notes := TruncateNotes(ind.Notes, narrow); notes != "" {
		c.Notes = "📝 " + notes
	}
	return c
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
