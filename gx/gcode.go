package gx

import (
	"slices"
	"strings"
)

// Document holds the G-code text as lines. Every line keeps its "\n"
// terminator except possibly the last one, so concatenating Lines yields
// the original text.
type Document struct {
	Lines []string
}

// ParseDocument splits raw slicer output into lines. Invalid UTF-8 is
// dropped and "\r\n" or a lone "\r" becomes "\n".
func ParseDocument(data []byte) *Document {
	s := strings.ToValidUTF8(string(data), "")
	if strings.IndexByte(s, '\r') >= 0 {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Document{Lines: lines}
}

func (d *Document) Len() int {
	n := 0
	for _, line := range d.Lines {
		n += len(line)
	}
	return n
}

func (d *Document) String() string {
	return strings.Join(d.Lines, "")
}

// NormalizeToolHeader makes sure the printer selects its extruder(s) before
// the first move and reports how many lines were inserted.
//
// A single extruder job gets "T0" as its first line unless one of the first
// lines already starts with it. A dual extruder job gets "T0" and "T1" right
// after the executable start marker; without the marker nothing is inserted.
func (d *Document) NormalizeToolHeader(extruders int) int {
	if extruders == ExtrudersDual {
		for i, line := range d.Lines {
			if strings.TrimSpace(line) == MarkExecutableStart {
				d.insertAfter(i, toolLineFirst, toolLineSecond)
				return 2
			}
		}
		return 0
	}

	for i, line := range d.Lines {
		if i >= toolScanLines {
			break
		}
		if strings.HasPrefix(line, ToolPrimary) {
			return 0
		}
	}
	d.insertBefore(0, toolLinePrimary)
	return 1
}

func (d *Document) insertAfter(pos int, lines ...string) {
	// the marker may be the unterminated last line
	if !strings.HasSuffix(d.Lines[pos], "\n") {
		d.Lines[pos] += "\n"
	}
	d.Lines = slices.Insert(d.Lines, pos+1, lines...)
}

func (d *Document) insertBefore(pos int, lines ...string) {
	d.Lines = slices.Insert(d.Lines, pos, lines...)
}
