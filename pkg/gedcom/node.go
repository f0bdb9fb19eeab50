package gedcom

import "strings"

// Record tags used by the transform.
const (
	TagIndividual = "INDI"
	TagFamily     = "FAM"
	TagName       = "NAME"
	TagSex        = "SEX"
	TagBirth      = "BIRT"
	TagDeath      = "DEAT"
	TagDate       = "DATE"
	TagNote       = "NOTE"
	TagBreed      = "_BREED"
	TagFamChild   = "FAMC"
	TagFamSpouse  = "FAMS"
	TagHusband    = "HUSB"
	TagWife       = "WIFE"
	TagChild      = "CHIL"

	tagContinue    = "CONT"
	tagConcatenate = "CONC"
)

// Node is one line of a GEDCOM file together with its nested lines.
type Node struct {
	Level    int
	Pointer  string // cross-reference ID including "@" delimiters, e.g. "@I1@"
	Tag      string
	Value    string
	Line     int // 1-based source line
	Children []*Node
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns every direct child with the given tag.
func (n *Node) ChildrenByTag(tag string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// ChildValue returns the value of the first child with the given tag,
// or "" when there is none.
func (n *Node) ChildValue(tag string) string {
	if c := n.Child(tag); c != nil {
		return c.Value
	}
	return ""
}

// StripPointer removes the "@" delimiters from a cross-reference.
func StripPointer(s string) string {
	return strings.ReplaceAll(s, "@", "")
}

// File is a decoded GEDCOM file.
type File struct {
	Records []*Node
}

// Individuals returns all INDI records in file order.
func (f *File) Individuals() []*Node { return f.recordsByTag(TagIndividual) }

// Families returns all FAM records in file order.
func (f *File) Families() []*Node { return f.recordsByTag(TagFamily) }

func (f *File) recordsByTag(tag string) []*Node {
	var out []*Node
	for _, r := range f.Records {
		if r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}
