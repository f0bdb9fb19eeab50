package gedcom

import (
	"errors"
	"strings"
	"testing"
)

const flockGED = "\xEF\xBB\xBF0 HEAD\r\n" + `1 CHAR UTF-8
0 @I1@ INDI
1 NAME Henrietta /Featherbottom/
1 SEX F
1 BIRT
2 DATE 15 MAR 2020
1 _BREED Rhode Island Red
1 NOTE Matriarch of the flock.
1 FAMS @F1@
0 @I2@ INDI
1 NAME Rooster /McFeathers/
1 SEX M
1 BIRT
2 DATE 1 JAN 2020
1 DEAT
1 NOTE The original
2 CONC  rooster.
2 CONT Crowed at dawn.
1 FAMS @F1@
0 @I3@ INDI
1 NAME Penny
1 BIRT
2 DATE 10 JUN 2021
1 DEAT
2 DATE 2 FEB 2024
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I2@
1 WIFE @I1@
1 CHIL @I3@
0 TRLR
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(flockGED))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := len(f.Records); got != 6 {
		t.Fatalf("records = %d, want 6", got)
	}
	if f.Records[0].Tag != "HEAD" {
		t.Errorf("first tag = %q, want HEAD (BOM must be stripped)", f.Records[0].Tag)
	}
	if got := len(f.Individuals()); got != 3 {
		t.Errorf("individuals = %d, want 3", got)
	}
	if got := len(f.Families()); got != 1 {
		t.Errorf("families = %d, want 1", got)
	}

	i1 := f.Individuals()[0]
	if i1.Pointer != "@I1@" {
		t.Errorf("pointer = %q, want @I1@", i1.Pointer)
	}
	if got := i1.Child(TagBirth).ChildValue(TagDate); got != "15 MAR 2020" {
		t.Errorf("BIRT.DATE = %q, want 15 MAR 2020", got)
	}
}

func TestDecodeContinuation(t *testing.T) {
	f, err := Decode(strings.NewReader(flockGED))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	note := f.Individuals()[1].ChildValue(TagNote)
	want := "The original rooster.\nCrowed at dawn."
	if note != want {
		t.Errorf("NOTE = %q, want %q", note, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"BadLevel", "0 HEAD\nX NAME foo\n", 2},
		{"SkippedLevel", "0 HEAD\n2 DATE 2020\n", 2},
		{"OrphanLine", "1 NAME foo\n", 1},
		{"MissingTag", "0 @I1@\n", 1},
		{"BadPointer", "0 @I1 INDI\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *SyntaxError", err)
			}
			if se.Line != tt.line {
				t.Errorf("line = %d, want %d", se.Line, tt.line)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(strings.NewReader("\n\n")); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestStripPointer(t *testing.T) {
	if got := StripPointer("@F12@"); got != "F12" {
		t.Errorf("StripPointer = %q, want F12", got)
	}
}
