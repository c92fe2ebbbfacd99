package match

import (
	"fmt"

	"github.com/manoskary/partitura/interpret"
)

// Line is one parsed match file line. Matchline returns the canonical
// text; re-parsing it yields an equal record.
type Line interface {
	Matchline() string
}

// Info is a free-form file-level attribute/value pair.
type Info struct {
	Attribute interpret.Value
	Value     interpret.Value
}

func (i *Info) Matchline() string {
	return fmt.Sprintf("info(%v,%v).", i.Attribute, i.Value)
}

// Meta is in-score metadata anchored to a bar and beat-timeline position.
type Meta struct {
	Attribute   interpret.Value
	Value       interpret.Value
	Bar         interpret.Value
	TimeInBeats interpret.Value
}

func (m *Meta) Matchline() string {
	return fmt.Sprintf("meta(%v,%v,%v,%v).", m.Attribute, m.Value, m.Bar, m.TimeInBeats)
}

// SustainPedal is a sustain pedal depth change.
type SustainPedal struct {
	Time  interpret.Value
	Value interpret.Value
}

func (s *SustainPedal) Matchline() string {
	return fmt.Sprintf("sustain(%v,%v).", s.Time, s.Value)
}

// SoftPedal is a soft pedal depth change.
type SoftPedal struct {
	Time  interpret.Value
	Value interpret.Value
}

func (s *SoftPedal) Matchline() string {
	return fmt.Sprintf("soft(%v,%v).", s.Time, s.Value)
}

// SnoteNote pairs a score note with the performed note realizing it.
type SnoteNote struct {
	Snote *Snote
	Note  *Pnote
}

// NewSnoteNote pairs snote and note. With samePitchSpelling set (the
// default when parsing), the performed note is replaced by a copy whose
// spelling fields are overwritten from the score note. This can break if
// the snote is not exactly matched to a note of the same pitch; handle
// with care.
func NewSnoteNote(snote *Snote, note *Pnote, samePitchSpelling bool) *SnoteNote {
	if samePitchSpelling {
		merged := *note
		merged.NoteName = snote.NoteName
		merged.Modifier = snote.Modifier
		merged.Octave = snote.Octave
		note = &merged
	}
	return &SnoteNote{Snote: snote, Note: note}
}

func (sn *SnoteNote) Matchline() string {
	return sn.Snote.Matchline() + "-" + sn.Note.Matchline() + "."
}

// SnoteDeletion is a notated event that was not played.
type SnoteDeletion struct {
	Snote *Snote
}

func (sd *SnoteDeletion) Matchline() string {
	return sd.Snote.Matchline() + "-deletion."
}

// InsertionNote is a played event with no notated counterpart. The
// performed note's fields are promoted onto the record itself.
type InsertionNote struct {
	*Pnote
}

func (in *InsertionNote) Matchline() string {
	return "insertion-" + in.Pnote.Matchline() + "."
}

// OrnamentNote is a performed note realizing an ornament anchored to a
// score position.
type OrnamentNote struct {
	Anchor interpret.Value
	Note   *Pnote
}

func (o *OrnamentNote) Matchline() string {
	return fmt.Sprintf("ornament(%v)-%v", o.Anchor, o.Note.Matchline())
}

// LineKind names the concrete line kind for reporting.
func LineKind(l Line) string {
	switch l.(type) {
	case *SnoteNote:
		return "snote-note"
	case *SnoteDeletion:
		return "deletion"
	case *InsertionNote:
		return "insertion"
	case *OrnamentNote:
		return "ornament"
	case *SustainPedal:
		return "sustain"
	case *SoftPedal:
		return "soft"
	case *Info:
		return "info"
	case *Meta:
		return "meta"
	case *Snote:
		return "snote"
	case *Pnote:
		return "note"
	default:
		return "unknown"
	}
}
