// Package styles holds the visual constants of the family tree: the
// generation and family palettes, gender labels and card text rules.
package styles

// GenerationColor is the card border color of one generation.
type GenerationColor struct {
	Living   string
	Deceased string
}

var generationPalette = [...]GenerationColor{
	{Living: "#7C3AED", Deceased: "#B4A3D9"},
	{Living: "#06B6D4", Deceased: "#8DD5E3"},
	{Living: "#F59E0B", Deceased: "#F9C574"},
	{Living: "#10B981", Deceased: "#7DD4B4"},
	{Living: "#EC4899", Deceased: "#F5A3CB"},
}

// GenerationCount is the number of distinct generation colors.
// Generation n and n+GenerationCount share a color.
const GenerationCount = len(generationPalette)

// Generation returns the palette entry for a generation index.
// Negative indices use the founders' entry.
func Generation(gen int) GenerationColor {
	if gen < 0 {
		gen = 0
	}
	return generationPalette[gen%GenerationCount]
}

// BorderColor returns the card border color for a generation.
func BorderColor(gen int, deceased bool) string {
	c := Generation(gen)
	if deceased {
		return c.Deceased
	}
	return c.Living
}

// FamilyColor is the connector gradient of a family.
type FamilyColor struct {
	ID    string
	Start string
	End   string
	Name  string
}

// DefaultFamily is the palette key for connectors without a known family.
const DefaultFamily = "default"

var familyPalette = []FamilyColor{
	{ID: "F1", Start: "#7C3AED", End: "#9333EA", Name: "purple"},
	{ID: "F2", Start: "#06B6D4", End: "#0891B2", Name: "cyan"},
	{ID: "F3", Start: "#F59E0B", End: "#D97706", Name: "amber"},
	{ID: "F4", Start: "#10B981", End: "#059669", Name: "emerald"},
	{ID: "F5", Start: "#EC4899", End: "#DB2777", Name: "pink"},
	{ID: DefaultFamily, Start: "#6366F1", End: "#4F46E5", Name: "indigo"},
}

// Families returns every family palette entry, the default last.
func Families() []FamilyColor {
	out := make([]FamilyColor, len(familyPalette))
	copy(out, familyPalette)
	return out
}

// Family returns the palette entry for a family identifier, falling back
// to the default entry for unknown or empty identifiers.
func Family(id string) FamilyColor {
	for _, f := range familyPalette {
		if f.ID == id {
			return f
		}
	}
	return familyPalette[len(familyPalette)-1]
}

// GradientID returns the SVG element ID of a family's connector gradient.
func GradientID(familyID string) string {
	return "connection-gradient-" + Family(familyID).ID
}
