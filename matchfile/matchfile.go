// Package matchfile holds an ordered collection of parsed match lines and
// convenience queries over them.
package matchfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manoskary/partitura/constants"
	"github.com/manoskary/partitura/match"
)

// Entry is one line of a match file. Line is nil when no grammar matched;
// Raw always keeps the original text.
type Entry struct {
	LineNum int
	Raw     string
	Line    match.Line
	Err     error
}

type File struct {
	Name    string
	Entries []Entry
}

// NotePair is a score note with the performed note matched to it.
type NotePair struct {
	Snote *match.Snote
	Note  *match.Pnote
}

// Load reads a match file and parses every line. Unparseable lines are
// kept as unmatched entries, not errors; only I/O failures come back as
// an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read match file: %w", err)
	}
	f := &File{Name: path}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, raw := range lines {
		entry := Entry{LineNum: i + 1, Raw: strings.TrimRight(raw, "\r")}
		entry.Line, entry.Err = match.ParseLine(strings.TrimSpace(raw))
		f.Entries = append(f.Entries, entry)
	}
	return f, nil
}

// Lines returns the parsed lines in file order, skipping unmatched ones.
func (f *File) Lines() []match.Line {
	var res []match.Line
	for _, e := range f.Entries {
		if e.Line != nil {
			res = append(res, e.Line)
		}
	}
	return res
}

// Unmatched returns the entries no grammar matched.
func (f *File) Unmatched() []Entry {
	var res []Entry
	for _, e := range f.Entries {
		if e.Line == nil {
			res = append(res, e)
		}
	}
	return res
}

// NotePairs returns all (snote, note) pairs.
func (f *File) NotePairs() []NotePair {
	var res []NotePair
	for _, e := range f.Entries {
		if sn, ok := e.Line.(*match.SnoteNote); ok {
			res = append(res, NotePair{Snote: sn.Snote, Note: sn.Note})
		}
	}
	return res
}

// Pnotes returns every performed note in the file: paired notes and
// insertions, in file order.
func (f *File) Pnotes() []*match.Pnote {
	var res []*match.Pnote
	for _, e := range f.Entries {
		switch l := e.Line.(type) {
		case *match.SnoteNote:
			res = append(res, l.Note)
		case *match.InsertionNote:
			res = append(res, l.Pnote)
		}
	}
	return res
}

// Version returns the format version from the matchFileVersion info line.
func (f *File) Version() (float64, bool) {
	for _, e := range f.Entries {
		if info, ok := e.Line.(*match.Info); ok &&
			info.Attribute.String() == constants.MatchFileVersionAttr {
			return info.Value.Num(), true
		}
	}
	return 0, false
}

// Write re-emits the file: canonical text for parsed lines, the original
// text for unmatched ones.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range f.Entries {
		var err error
		if e.Line != nil {
			_, err = bw.WriteString(e.Line.Matchline())
		} else {
			_, err = bw.WriteString(e.Raw)
		}
		if err != nil {
			return err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (f *File) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create match file: %w", err)
	}
	defer out.Close()
	return f.Write(out)
}
