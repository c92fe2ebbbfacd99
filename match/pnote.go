package match

import (
	"fmt"
	"strings"

	"github.com/manoskary/partitura/constants"
	"github.com/manoskary/partitura/interpret"
	"github.com/manoskary/partitura/pitch"
)

// Pnote is a recorded performance event.
type Pnote struct {
	Number    interpret.Value
	NoteName  string
	Modifier  string
	Octave    int
	Onset     interpret.Value
	Offset    interpret.Value
	AdjOffset interpret.Value
	Velocity  int
	Version   float64

	// set only when a MIDI pitch was provided and validated
	midiPitch  int
	pitchClass int
	hasMidi    bool
}

// PnoteOptions carries the constructor inputs. Pitch may be given as a
// full spelling (NoteName, Modifier, Octave), as a MIDI pitch number, or
// both.
type PnoteOptions struct {
	Number    interpret.Value
	NoteName  string
	Modifier  string
	Octave    *int
	MidiPitch *int
	Onset     interpret.Value
	Offset    interpret.Value
	AdjOffset *interpret.Value // nil defaults to Offset
	Velocity  int
	Version   float64 // 0 defaults to the latest version
}

// NewPnote validates and builds a performed note. At least one of pitch
// spelling and MIDI pitch must be given; when both are, they must agree.
// A missing spelling is back-filled from the MIDI pitch via the
// natural/sharp pitch class table.
func NewPnote(opts PnoteOptions) (*Pnote, error) {
	p := &Pnote{
		Number:   opts.Number,
		Onset:    opts.Onset,
		Offset:   opts.Offset,
		Velocity: opts.Velocity,
		Version:  opts.Version,
	}
	if p.Version == 0 {
		p.Version = constants.LatestVersion
	}

	hasSpelling := opts.NoteName != "" && opts.Modifier != "" && opts.Octave != nil
	if !hasSpelling && opts.MidiPitch == nil {
		return nil, fmt.Errorf("no note height information provided")
	}

	if hasSpelling {
		if !pitch.IsNoteName(opts.NoteName) {
			return nil, fmt.Errorf("invalid note name %q, should be in %v",
				opts.NoteName, strings.Join(pitch.NoteNames, ","))
		}
		p.NoteName = strings.ToUpper(opts.NoteName)
		p.Modifier = opts.Modifier
		p.Octave = *opts.Octave
	} else {
		p.NoteName, p.Modifier, p.Octave = pitch.MidiToSpelling(*opts.MidiPitch)
	}

	if opts.MidiPitch != nil {
		spelled, _, err := pitch.SpellingToMidi(p.Modifier, p.NoteName, p.Octave)
		if err != nil {
			return nil, err
		}
		if spelled != *opts.MidiPitch {
			return nil, fmt.Errorf("pitch spelling %v%v%v does not match MIDI pitch %v",
				p.NoteName, p.Modifier, p.Octave, *opts.MidiPitch)
		}
		p.midiPitch = *opts.MidiPitch
		p.pitchClass = ((*opts.MidiPitch % 12) + 12) % 12
		p.hasMidi = true
	}

	if opts.AdjOffset != nil {
		p.AdjOffset = *opts.AdjOffset
	} else {
		p.AdjOffset = p.Offset
	}

	return p, nil
}

// newPnoteFromValues builds a performed note from the interpreted fields of
// the pnote grammar: 8 fields for the current version, 7 for version 1
// (no AdjOffset).
func newPnoteFromValues(vals []interpret.Value, version float64, hasAdjOffset bool) (*Pnote, error) {
	octave, err := toInt(vals[3])
	if err != nil {
		return nil, fmt.Errorf("note octave: %w", err)
	}
	velocity, err := toInt(vals[len(vals)-1])
	if err != nil {
		return nil, fmt.Errorf("note velocity: %w", err)
	}
	opts := PnoteOptions{
		Number:   vals[0],
		NoteName: vals[1].String(),
		Modifier: vals[2].String(),
		Octave:   &octave,
		Onset:    vals[4],
		Offset:   vals[5],
		Velocity: velocity,
		Version:  version,
	}
	if hasAdjOffset {
		adj := vals[6]
		opts.AdjOffset = &adj
	}
	return NewPnote(opts)
}

// MidiPitch returns the MIDI pitch number and pitch class, computing them
// from the spelling when no MIDI pitch was given at construction.
func (p *Pnote) MidiPitch() (int, int, error) {
	if p.hasMidi {
		return p.midiPitch, p.pitchClass, nil
	}
	return pitch.SpellingToMidi(p.Modifier, p.NoteName, p.Octave)
}

func (p *Pnote) Duration() float64 {
	return p.Offset.Num() - p.Onset.Num()
}

func (p *Pnote) AdjDuration() float64 {
	return p.AdjOffset.Num() - p.Onset.Num()
}

// Matchline renders the canonical text for the note's own format version:
// version 1 lines carry no AdjOffset field.
func (p *Pnote) Matchline() string {
	if p.Version == constants.LegacyVersion {
		return fmt.Sprintf("note(%v,[%v,%v],%v,%v,%v,%v)",
			p.Number, p.NoteName, p.Modifier, p.Octave,
			p.Onset, p.Offset, p.Velocity)
	}
	return fmt.Sprintf("note(%v,[%v,%v],%v,%v,%v,%v,%v)",
		p.Number, p.NoteName, p.Modifier, p.Octave,
		p.Onset, p.Offset, p.AdjOffset, p.Velocity)
}

// ParsePnote parses a bare performed note term, trying the current grammar
// first and falling back to the version 1 variant.
func ParsePnote(s string) (*Pnote, error) {
	if vals := captureFields(pnoteRe, s); vals != nil {
		return newPnoteFromValues(vals, constants.LatestVersion, true)
	}
	if vals := captureFields(pnoteReV1, s); vals != nil {
		return newPnoteFromValues(vals, constants.LegacyVersion, false)
	}
	return nil, ErrNoMatch
}
