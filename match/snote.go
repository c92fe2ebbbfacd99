package match

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/manoskary/partitura/interpret"
	"github.com/manoskary/partitura/pitch"
)

// Snote is a notated score event.
type Snote struct {
	Anchor        interpret.Value
	NoteName      string
	Modifier      string
	Octave        int
	Bar           interpret.Value
	Beat          interpret.Value
	Offset        interpret.Value
	Duration      interpret.Value
	OnsetInBeats  interpret.Value
	OffsetInBeats interpret.Value

	// Order matters for output; duplicates are allowed.
	ScoreAttributesList []string
}

func NewSnote(anchor interpret.Value, noteName, modifier string, octave int,
	bar, beat, offset, duration, onsetInBeats, offsetInBeats interpret.Value,
	scoreAttributes []string) *Snote {
	return &Snote{
		Anchor:              anchor,
		NoteName:            noteName,
		Modifier:            modifier,
		Octave:              octave,
		Bar:                 bar,
		Beat:                beat,
		Offset:              offset,
		Duration:            duration,
		OnsetInBeats:        onsetInBeats,
		OffsetInBeats:       offsetInBeats,
		ScoreAttributesList: scoreAttributes,
	}
}

// newSnoteFromValues builds a score note from the eleven interpreted fields
// of the snote grammar. The attribute list field must have interpreted as a
// string (a comma-joined tag list); any other type is rejected.
func newSnoteFromValues(vals []interpret.Value) (*Snote, error) {
	octave, err := toInt(vals[3])
	if err != nil {
		return nil, fmt.Errorf("snote octave: %w", err)
	}
	if vals[10].Kind != interpret.KindStr {
		return nil, fmt.Errorf("score attributes must be a list or a comma-separated string")
	}
	return NewSnote(vals[0], vals[1].String(), vals[2].String(), octave,
		vals[4], vals[5], vals[6], vals[7], vals[8], vals[9],
		strings.Split(vals[10].Str, ",")), nil
}

// DurationInBeats is derived, never stored.
func (s *Snote) DurationInBeats() float64 {
	return s.OffsetInBeats.Num() - s.OnsetInBeats.Num()
}

// DurationSymbolic renders the duration as a lowest-terms fraction string.
func (s *Snote) DurationSymbolic() string {
	return fractionString(s.Duration)
}

func (s *Snote) MidiPitch() (int, int, error) {
	return pitch.SpellingToMidi(s.Modifier, s.NoteName, s.Octave)
}

func (s *Snote) Matchline() string {
	return fmt.Sprintf("snote(%v,[%v,%v],%v,%v:%v,%v,%v,%v,%v,[%v])",
		s.Anchor, s.NoteName, s.Modifier, s.Octave, s.Bar, s.Beat,
		fractionString(s.Offset), s.DurationSymbolic(),
		s.OnsetInBeats, s.OffsetInBeats,
		strings.Join(s.ScoreAttributesList, ","))
}

// ParseSnote parses a bare score note term, e.g.
// snote(1-1,[E,n],4,0:1,0,1/4,-1.0,0.0,[staff1]).
func ParseSnote(s string) (*Snote, error) {
	vals := captureFields(snoteRe, s)
	if vals == nil {
		return nil, ErrNoMatch
	}
	return newSnoteFromValues(vals)
}

// fractionString renders a numeric value as a lowest-terms fraction, the
// form the snote grammar's rational literals parse back. Strings pass
// through untouched.
func fractionString(v interpret.Value) string {
	if v.Kind == interpret.KindStr {
		return v.Str
	}
	r := new(big.Rat).SetFloat64(v.Num())
	if r == nil {
		return v.String()
	}
	return r.RatString()
}

func toInt(v interpret.Value) (int, error) {
	switch v.Kind {
	case interpret.KindInt:
		return int(v.Int), nil
	case interpret.KindFloat:
		return int(v.Float), nil
	default:
		return 0, fmt.Errorf("not a number: %q", v.Str)
	}
}
