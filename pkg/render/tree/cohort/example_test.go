package cohort_test

import (
	"fmt"

	"github.com/coopcast/flocktree/pkg/pedigree"
	"github.com/coopcast/flocktree/pkg/render/tree/cohort"
)

func ExampleGroup() {
	flock := []pedigree.Individual{
		{ID: "I1", BirthDate: "3 MAY 2023"},
		{ID: "I2"},
		{ID: "I3", BirthDate: "SEP 2022"},
		{ID: "I4", BirthDate: "3 MAY 2023"},
	}

	for _, c := range cohort.Group(flock) {
		fmt.Printf("%s: %d\n", c.Display, len(c.Members))
	}
	// Output:
	// SEP 2022: 1
	// 3 MAY 2023: 2
	// Unknown: 1
}
