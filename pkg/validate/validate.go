// Package validate checks the cross-references of pedigree records.
//
// The graph builder in package pedigree skips references it cannot resolve.
// The validator reports each of them instead. Neither fails on bad data.
package validate

import (
	"fmt"
	"strings"

	"github.com/coopcast/flocktree/pkg/pedigree"
)

// Stats summarizes a record collection. Living + Deceased == Individuals.
type Stats struct {
	Individuals int `json:"individuals" bson:"individuals"`
	Families    int `json:"families" bson:"families"`
	Living      int `json:"living" bson:"living"`
	Deceased    int `json:"deceased" bson:"deceased"`
}

// Result is the outcome of [Validate].
type Result struct {
	IsValid bool     `json:"is_valid" bson:"is_valid"`
	Errors  []string `json:"errors" bson:"errors"`
	Stats   Stats    `json:"stats" bson:"stats"`
}

// Validate reports every family reference on an individual and every
// individual reference on a family that does not resolve. Empty references
// are ignored. The collection is valid when there are no errors.
func Validate(recs pedigree.Records) Result {
	res := Result{
		Errors: []string{},
		Stats: Stats{
			Individuals: len(recs.Individuals),
			Families:    len(recs.Families),
		},
	}

	individuals := make(map[string]bool, len(recs.Individuals))
	for _, ind := range recs.Individuals {
		individuals[ind.Ref()] = true
		if ind.IsDeceased {
			res.Stats.Deceased++
		} else {
			res.Stats.Living++
		}
	}
	families := make(map[string]bool, len(recs.Families))
	for _, fam := range recs.Families {
		families[fam.Ref()] = true
	}

	for _, ind := range recs.Individuals {
		for _, f := range ind.ParentFamilies() {
			if f != "" && !families[f] {
				res.Errors = append(res.Errors, fmt.Sprintf("Individual %s references non-existent family %s in FAMC", ind.Ref(), f))
			}
		}
		for _, f := range ind.SpouseFamilyIDs {
			if f != "" && !families[f] {
				res.Errors = append(res.Errors, fmt.Sprintf("Individual %s references non-existent family %s in FAMS", ind.Ref(), f))
			}
		}
	}

	for _, fam := range recs.Families {
		check := func(ref, role string) {
			if ref != "" && !individuals[ref] {
				res.Errors = append(res.Errors, fmt.Sprintf("Family %s references non-existent individual %s as %s", fam.Ref(), ref, role))
			}
		}
		check(fam.Husband, "husband")
		check(fam.Wife, "wife")
		for _, c := range fam.ChildrenIDs {
			check(c, "child")
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// FormatReport renders a result as the human-readable console report.
// fileName defaults to "GEDCOM file".
func FormatReport(res Result, fileName string) string {
	if fileName == "" {
		fileName = "GEDCOM file"
	}

	var lines []string
	if res.IsValid {
		lines = append(lines, fmt.Sprintf("✅ %s is valid", fileName))
	} else {
		lines = append(lines, fmt.Sprintf("❌ %s has %d error(s):", fileName, len(res.Errors)))
		for i, e := range res.Errors {
			lines = append(lines, fmt.Sprintf("   %d. %s", i+1, e))
		}
	}

	lines = append(lines,
		"",
		"📊 Statistics:",
		fmt.Sprintf("   - Total chickens: %d", res.Stats.Individuals),
		fmt.Sprintf("   - Living: %d 🐔", res.Stats.Living),
		fmt.Sprintf("   - Deceased: %d †", res.Stats.Deceased),
		fmt.Sprintf("   - Families: %d", res.Stats.Families),
	)
	return strings.Join(lines, "\n")
}
