package gedcom

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmpty is returned by [Decode] when the input holds no records.
var ErrEmpty = errors.New("gedcom: no records")

// SyntaxError describes a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gedcom: line %d: %s", e.Line, e.Msg)
}

const maxLineLength = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode reads a GEDCOM stream into record trees.
func Decode(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	f := &File{}
	var stack []*Node
	lineNo := 0

	for sc.Scan() {
		lineNo++
		raw := sc.Bytes()
		if lineNo == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}
		line := strings.TrimRight(string(raw), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		n, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}

		if n.Level == 0 {
			f.Records = append(f.Records, n)
			stack = append(stack[:0], n)
			continue
		}
		if n.Level > len(stack) {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("level %d skips a level", n.Level)}
		}
		stack = stack[:n.Level]
		parent := stack[n.Level-1]

		switch n.Tag {
		case tagContinue:
			parent.Value += "\n" + n.Value
			continue
		case tagConcatenate:
			parent.Value += n.Value
			continue
		}

		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gedcom: read: %w", err)
	}
	if len(f.Records) == 0 {
		return nil, ErrEmpty
	}
	return f, nil
}

// DecodeFile opens and decodes the GEDCOM file at path.
func DecodeFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh)
}

// parseLine splits "<level> [@xref@] <TAG> [value]".
func parseLine(line string, lineNo int) (*Node, error) {
	line = strings.TrimLeft(line, " \t")

	levelStr, rest, _ := strings.Cut(line, " ")
	level, err := strconv.Atoi(levelStr)
	if err != nil || level < 0 {
		return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("invalid level %q", levelStr)}
	}

	n := &Node{Level: level, Line: lineNo}
	rest = strings.TrimLeft(rest, " ")
	if strings.HasPrefix(rest, "@") {
		ptr, after, _ := strings.Cut(rest, " ")
		if len(ptr) < 3 || !strings.HasSuffix(ptr, "@") {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("malformed cross-reference %q", ptr)}
		}
		n.Pointer = ptr
		rest = strings.TrimLeft(after, " ")
	}

	tag, value, _ := strings.Cut(rest, " ")
	if tag == "" {
		return nil, &SyntaxError{Line: lineNo, Msg: "missing tag"}
	}
	n.Tag = tag
	n.Value = value
	return n, nil
}
