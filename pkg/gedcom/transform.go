package gedcom

import (
	"regexp"
	"strings"

	"github.com/coopcast/flocktree/pkg/pedigree"
)

// nameRe splits "Given /Surname/" into its parts.
var nameRe = regexp.MustCompile(`(.+?)/(.+)/`)

// Transform maps the INDI and FAM records of f onto pedigree records.
func Transform(f *File) pedigree.Records {
	var recs pedigree.Records
	for _, n := range f.Individuals() {
		recs.Individuals = append(recs.Individuals, individual(n))
	}
	for _, n := range f.Families() {
		recs.Families = append(recs.Families, family(n))
	}
	return recs
}

func individual(n *Node) pedigree.Individual {
	id := StripPointer(n.Pointer)
	given, surname := splitName(n.ChildValue(TagName))

	ind := pedigree.Individual{
		ID:        id,
		GedcomID:  id,
		GivenName: given,
		Surname:   surname,
		FullName:  strings.TrimSpace(given + " " + surname),
		Gender:    n.ChildValue(TagSex),
		BirthDate: n.Child(TagBirth).ChildValue(TagDate),
		Breed:     n.ChildValue(TagBreed),
	}
	if ind.Gender == "" {
		ind.Gender = pedigree.GenderUnknown
	}

	if death := n.Child(TagDeath); death != nil {
		ind.IsDeceased = true
		ind.DeathDate = death.ChildValue(TagDate)
	}

	for _, note := range n.ChildrenByTag(TagNote) {
		if note.Value != "" {
			ind.Notes = append(ind.Notes, note.Value)
		}
	}

	for _, famc := range n.ChildrenByTag(TagFamChild) {
		if famc.Value != "" {
			ind.ParentFamilyIDs = append(ind.ParentFamilyIDs, StripPointer(famc.Value))
		}
	}
	if len(ind.ParentFamilyIDs) > 0 {
		ind.ParentFamilyID = ind.ParentFamilyIDs[0]
	}
	for _, fams := range n.ChildrenByTag(TagFamSpouse) {
		if fams.Value != "" {
			ind.SpouseFamilyIDs = append(ind.SpouseFamilyIDs, StripPointer(fams.Value))
		}
	}
	return ind
}

func family(n *Node) pedigree.Family {
	id := StripPointer(n.Pointer)
	fam := pedigree.Family{
		ID:       id,
		GedcomID: id,
		Husband:  StripPointer(n.ChildValue(TagHusband)),
		Wife:     StripPointer(n.ChildValue(TagWife)),
	}
	for _, c := range n.ChildrenByTag(TagChild) {
		if c.Value != "" {
			fam.ChildrenIDs = append(fam.ChildrenIDs, StripPointer(c.Value))
		}
	}
	return fam
}

func splitName(full string) (given, surname string) {
	if full == "" {
		return "", ""
	}
	if m := nameRe.FindStringSubmatch(full); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(full), ""
}
