// Package cohort groups individuals into birth-date cohorts.
//
// Individuals are ordered by normalized birth date (see package dates) and
// partitioned into runs sharing the same key. Each run is one cohort and is
// drawn as one row of the tree. Individuals without a birth date share a
// final cohort displayed as "Unknown".
package cohort

import (
	"slices"
	"strings"

	"github.com/coopcast/flocktree/pkg/dates"
	"github.com/coopcast/flocktree/pkg/pedigree"
)

// UnknownDisplay labels the cohort of individuals without a birth date.
const UnknownDisplay = "Unknown"

// Cohort is a set of individuals sharing a normalized birth date.
type Cohort struct {
	// DateKey is the normalized "YYYY-MM-DD" key, or "" for unknown dates.
	DateKey string
	// Display is the birth date as written on the first member.
	Display string
	Members []pedigree.Individual
}

// Group sorts individuals by birth date and partitions them into cohorts
// in ascending date order. The input slice is not modified.
func Group(individuals []pedigree.Individual) []Cohort {
	if len(individuals) == 0 {
		return nil
	}

	sorted := slices.Clone(individuals)
	slices.SortStableFunc(sorted, func(a, b pedigree.Individual) int {
		return strings.Compare(dates.SortKey(a.BirthDate), dates.SortKey(b.BirthDate))
	})

	var cohorts []Cohort
	for _, ind := range sorted {
		key, _ := dates.Key(ind.BirthDate)
		if n := len(cohorts); n == 0 || cohorts[n-1].DateKey != key {
			display := ind.BirthDate
			if display == "" {
				display = UnknownDisplay
			}
			cohorts = append(cohorts, Cohort{DateKey: key, Display: display})
		}
		last := &cohorts[len(cohorts)-1]
		last.Members = append(last.Members, ind)
	}
	return cohorts
}
