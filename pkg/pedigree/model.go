package pedigree

// Gender codes as found in the GEDCOM SEX tag.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "U"
)

// Individual is a single bird in the pedigree.
type Individual struct {
	ID              string   `json:"id" bson:"id"`
	GedcomID        string   `json:"gedcom_id,omitempty" bson:"gedcom_id,omitempty"`
	GivenName       string   `json:"given_name,omitempty" bson:"given_name,omitempty"`
	Surname         string   `json:"surname,omitempty" bson:"surname,omitempty"`
	FullName        string   `json:"full_name" bson:"full_name"`
	Gender          string   `json:"gender" bson:"gender"`
	BirthDate       string   `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	DeathDate       string   `json:"death_date,omitempty" bson:"death_date,omitempty"`
	IsDeceased      bool     `json:"is_deceased,omitempty" bson:"is_deceased,omitempty"`
	Breed           string   `json:"breed,omitempty" bson:"breed,omitempty"`
	Notes           []string `json:"notes,omitempty" bson:"notes,omitempty"`
	ParentFamilyID  string   `json:"parent_family_id,omitempty" bson:"parent_family_id,omitempty"`
	SpouseFamilyIDs []string `json:"spouse_family_ids,omitempty" bson:"spouse_family_ids,omitempty"`

	// ParentFamilyIDs lists every FAMC reference in source order.
	// ParentFamilyID is its first entry.
	ParentFamilyIDs []string `json:"parent_family_ids,omitempty" bson:"parent_family_ids,omitempty"`
}

// Ref returns the identifier families use to reference this individual:
// the GEDCOM ID when set, otherwise ID.
func (i Individual) Ref() string {
	if i.GedcomID != "" {
		return i.GedcomID
	}
	return i.ID
}

// ParentFamilies returns every family this individual is a child of.
// Records built without ParentFamilyIDs fall back to ParentFamilyID.
func (i Individual) ParentFamilies() []string {
	if len(i.ParentFamilyIDs) > 0 {
		return i.ParentFamilyIDs
	}
	if i.ParentFamilyID != "" {
		return []string{i.ParentFamilyID}
	}
	return nil
}

// Family links up to two parents with their children.
type Family struct {
	ID          string   `json:"id" bson:"id"`
	GedcomID    string   `json:"gedcom_id,omitempty" bson:"gedcom_id,omitempty"`
	Husband     string   `json:"husband,omitempty" bson:"husband,omitempty"`
	Wife        string   `json:"wife,omitempty" bson:"wife,omitempty"`
	ChildrenIDs []string `json:"children_ids,omitempty" bson:"children_ids,omitempty"`
}

// Ref returns the identifier individuals use to reference this family:
// the GEDCOM ID when set, otherwise ID.
func (f Family) Ref() string {
	if f.GedcomID != "" {
		return f.GedcomID
	}
	return f.ID
}

// Records is the complete input of a family tree render.
type Records struct {
	Individuals []Individual `json:"individuals" bson:"individuals"`
	Families    []Family     `json:"families" bson:"families"`
}

// Empty reports whether there are no individuals to draw.
func (r Records) Empty() bool { return len(r.Individuals) == 0 }
