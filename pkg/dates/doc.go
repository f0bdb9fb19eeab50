// Package dates normalizes loosely formatted genealogical dates.
//
// GEDCOM exports in the wild rarely carry full dates. Birth records in a
// flock file typically look like one of:
//
//	"3 MAY 2023"   day, month abbreviation, year
//	"SEP 2024"     month abbreviation, year
//	"2024"         year only
//
// [Key] turns any of these into a zero-padded "YYYY-MM-DD" string that sorts
// lexicographically in chronological order. Missing parts default to "01".
// [SortKey] additionally maps an absent date to [Sentinel], which sorts after
// every real date.
//
// Normalization is purely lexical. There is no calendar validation, so
// "31 FEB 2024" becomes "2024-02-31", and an unknown month abbreviation
// becomes "01". Malformed input never produces an error.
package dates
