// Package gedcom reads GEDCOM 5.5 files into tagged record trees and maps
// them onto pedigree records.
//
// # Reading
//
// A GEDCOM file is a sequence of lines of the form
//
//	<level> [@<xref>@] <TAG> [<value>]
//
// where level 0 starts a new record and deeper levels nest under the nearest
// shallower line. [Decode] returns a [File] holding every level-0 record as a
// [Node] tree. CONT and CONC continuation lines are folded into their parent's
// value. No semantic checks are made: cross-references are kept as written.
//
//	f, err := gedcom.Decode(r)
//	for _, indi := range f.Individuals() {
//	    name := indi.Child("NAME").Value
//	}
//
// # Transform
//
// [Transform] maps INDI and FAM records onto [pedigree.Records]:
//
//	NAME "Given /Surname/"   given, surname, full name
//	BIRT.DATE                birth date (free text)
//	DEAT, DEAT.DATE          deceased flag, death date
//	SEX                      gender, "U" when absent
//	_BREED                   breed label
//	NOTE                     notes, in order
//	FAMC (first), FAMS       parent family, spouse families
//	HUSB, WIFE, CHIL         family members
//
// Pointer values have their "@" delimiters removed.
//
// [pedigree.Records]: github.com/coopcast/flocktree/pkg/pedigree.Records
package gedcom
