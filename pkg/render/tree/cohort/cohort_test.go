package cohort

import (
	"testing"

	"github.com/coopcast/flocktree/pkg/pedigree"
)

func ids(c Cohort) []string {
	out := make([]string, len(c.Members))
	for i, m := range c.Members {
		out[i] = m.ID
	}
	return out
}

func TestGroup(t *testing.T) {
	inds := []pedigree.Individual{
		{ID: "late", BirthDate: "10 JUN 2021"},
		{ID: "nodate"},
		{ID: "a", BirthDate: "3 MAY 2023"},
		{ID: "early", BirthDate: "1 JAN 2020"},
		{ID: "b", BirthDate: "03 MAY 2023"},
		{ID: "month", BirthDate: "MAY 2023"},
	}

	got := Group(inds)

	want := []struct {
		key     string
		display string
		members []string
	}{
		{"2020-01-01", "1 JAN 2020", []string{"early"}},
		{"2021-06-10", "10 JUN 2021", []string{"late"}},
		{"2023-05-01", "MAY 2023", []string{"month"}},
		{"2023-05-03", "3 MAY 2023", []string{"a", "b"}},
		{"", UnknownDisplay, []string{"nodate"}},
	}

	if len(got) != len(want) {
		t.Fatalf("cohorts = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		c := got[i]
		if c.DateKey != w.key || c.Display != w.display {
			t.Errorf("cohort %d = (%q, %q), want (%q, %q)", i, c.DateKey, c.Display, w.key, w.display)
		}
		gotIDs := ids(c)
		if len(gotIDs) != len(w.members) {
			t.Errorf("cohort %d members = %v, want %v", i, gotIDs, w.members)
			continue
		}
		for j := range gotIDs {
			if gotIDs[j] != w.members[j] {
				t.Errorf("cohort %d members = %v, want %v", i, gotIDs, w.members)
				break
			}
		}
	}
}

func TestGroupOrdered(t *testing.T) {
	inds := []pedigree.Individual{
		{ID: "1", BirthDate: "2019"},
		{ID: "2", BirthDate: "DEC 2018"},
		{ID: "3", BirthDate: "5 JAN 2019"},
	}
	got := Group(inds)
	for i := 1; i < len(got); i++ {
		if got[i-1].DateKey >= got[i].DateKey {
			t.Errorf("cohort keys out of order: %q >= %q", got[i-1].DateKey, got[i].DateKey)
		}
	}
}

func TestGroupEmpty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Errorf("Group(nil) = %v, want empty", got)
	}
}

func TestGroupDoesNotMutateInput(t *testing.T) {
	inds := []pedigree.Individual{{ID: "b", BirthDate: "2022"}, {ID: "a", BirthDate: "2020"}}
	Group(inds)
	if inds[0].ID != "b" {
		t.Error("Group reordered its input")
	}
}
