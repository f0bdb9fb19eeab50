package dates

import (
	"strconv"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"3 MAY 2023", "2023-05-03", true},
		{"10 MAY 2025", "2025-05-10", true},
		{"SEP 2024", "2024-09-01", true},
		{"2024", "2024-01-01", true},
		{"  15 MAR 2020 ", "2020-03-15", true},
		{"1 XYZ 2021", "2021-01-01", true},  // unknown month
		{"31 FEB 2024", "2024-02-31", true}, // no calendar validation
		{"ABT 1 JAN 2020 X", "ABT 1 JAN 2020 X", true},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		got, ok := Key(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Key(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestKeyDayMonthYearProperty(t *testing.T) {
	for m, abbrev := range monthAbbrevs {
		for day := 1; day <= 31; day++ {
			in := strconv.Itoa(day) + " " + abbrev + " 1999"
			want := "1999-" + pad2(strconv.Itoa(m+1)) + "-" + pad2(strconv.Itoa(day))
			if got, _ := Key(in); got != want {
				t.Fatalf("Key(%q) = %q, want %q", in, got, want)
			}
		}
	}
}

func TestSortKey(t *testing.T) {
	if got := SortKey(""); got != Sentinel {
		t.Errorf("SortKey(\"\") = %q, want %q", got, Sentinel)
	}
	if SortKey("1 JAN 2024") >= Sentinel {
		t.Error("real dates must sort before the sentinel")
	}
	if SortKey("SEP 2024") <= SortKey("3 MAY 2023") {
		t.Error("SEP 2024 must sort after 3 MAY 2023")
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 MAY 2023", 2023},
		{"2024", 2024},
		{"ABT 1987", 1987},
		{"MAY", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Year(tt.in); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	if got := MonthNumber("DEC"); got != "12" {
		t.Errorf("MonthNumber(DEC) = %q, want 12", got)
	}
	if got := MonthNumber("dec"); got != "01" {
		t.Errorf("MonthNumber(dec) = %q, want 01", got)
	}
}
