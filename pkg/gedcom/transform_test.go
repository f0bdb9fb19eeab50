package gedcom

import (
	"slices"
	"strings"
	"testing"
)

func TestTransform(t *testing.T) {
	f, err := Decode(strings.NewReader(flockGED))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	recs := Transform(f)

	if len(recs.Individuals) != 3 || len(recs.Families) != 1 {
		t.Fatalf("got %d individuals, %d families; want 3, 1", len(recs.Individuals), len(recs.Families))
	}

	hen := recs.Individuals[0]
	if hen.ID != "I1" || hen.GedcomID != "I1" {
		t.Errorf("ID = %q/%q, want I1/I1", hen.ID, hen.GedcomID)
	}
	if hen.GivenName != "Henrietta" || hen.Surname != "Featherbottom" {
		t.Errorf("name = %q %q", hen.GivenName, hen.Surname)
	}
	if hen.FullName != "Henrietta Featherbottom" {
		t.Errorf("FullName = %q", hen.FullName)
	}
	if hen.Breed != "Rhode Island Red" {
		t.Errorf("Breed = %q", hen.Breed)
	}
	if hen.IsDeceased {
		t.Error("hen should be living")
	}
	if !slices.Equal(hen.SpouseFamilyIDs, []string{"F1"}) {
		t.Errorf("SpouseFamilyIDs = %v", hen.SpouseFamilyIDs)
	}

	rooster := recs.Individuals[1]
	if !rooster.IsDeceased || rooster.DeathDate != "" {
		t.Errorf("rooster deceased = %v, death date = %q; want true, empty", rooster.IsDeceased, rooster.DeathDate)
	}

	chick := recs.Individuals[2]
	if chick.FullName != "Penny" || chick.Surname != "" {
		t.Errorf("chick name = %q / %q", chick.FullName, chick.Surname)
	}
	if chick.Gender != "U" {
		t.Errorf("Gender = %q, want U", chick.Gender)
	}
	if chick.ParentFamilyID != "F1" {
		t.Errorf("ParentFamilyID = %q, want F1", chick.ParentFamilyID)
	}
	if chick.DeathDate != "2 FEB 2024" {
		t.Errorf("DeathDate = %q", chick.DeathDate)
	}

	fam := recs.Families[0]
	if fam.Husband != "I2" || fam.Wife != "I1" || !slices.Equal(fam.ChildrenIDs, []string{"I3"}) {
		t.Errorf("family = %+v", fam)
	}
}

func TestTransformMultipleFAMC(t *testing.T) {
	f, err := Decode(strings.NewReader(`0 @I1@ INDI
1 NAME Foundling
1 FAMC @F1@
1 FAMC @F404@
0 @F1@ FAM
1 CHIL @I1@
`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ind := Transform(f).Individuals[0]

	if ind.ParentFamilyID != "F1" {
		t.Errorf("ParentFamilyID = %q, want F1", ind.ParentFamilyID)
	}
	if !slices.Equal(ind.ParentFamilyIDs, []string{"F1", "F404"}) {
		t.Errorf("ParentFamilyIDs = %v, want [F1 F404]", ind.ParentFamilyIDs)
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in, given, surname string
	}{
		{"Henrietta /Featherbottom/", "Henrietta", "Featherbottom"},
		{"Penny", "Penny", ""},
		{"/Nameless/", "/Nameless/", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		g, s := splitName(tt.in)
		if g != tt.given || s != tt.surname {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tt.in, g, s, tt.given, tt.surname)
		}
	}
}
