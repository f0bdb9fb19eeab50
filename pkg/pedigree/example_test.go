package pedigree_test

import (
	"fmt"

	"github.com/coopcast/flocktree/pkg/pedigree"
)

func ExampleFamilyKey() {
	fmt.Println(pedigree.FamilyKey("I2", "I1"))
	fmt.Println(pedigree.FamilyKey("I3", ""))
	// Output:
	// I1-I2
	// I3
}

func ExampleBuild() {
	individuals := []pedigree.Individual{
		{ID: "I1", FullName: "Big Red", Gender: pedigree.GenderMale, BirthDate: "2 APR 2020"},
		{ID: "I2", FullName: "Henrietta", Gender: pedigree.GenderFemale, BirthDate: "9 JUN 2020"},
		{ID: "I3", FullName: "Nugget", Gender: pedigree.GenderFemale, BirthDate: "1 MAY 2022"},
	}
	families := []pedigree.Family{
		{ID: "F1", Husband: "I1", Wife: "I2", ChildrenIDs: []string{"I3"}},
	}

	g := pedigree.Build(individuals, families)

	fmt.Println("spouses of I1:", g.Spouses("I1"))
	fmt.Println("parents of I3:", g.Parents("I3"))
	for _, ind := range individuals {
		gen, _ := g.Generation(ind.ID)
		fmt.Printf("%s: generation %d\n", ind.FullName, gen)
	}
	// Output:
	// spouses of I1: [I2]
	// parents of I3: [I1 I2]
	// Big Red: generation 0
	// Henrietta: generation 0
	// Nugget: generation 1
}
