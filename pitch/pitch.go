// Package pitch maps between pitch spelling (letter, modifier, octave) and
// MIDI pitch numbers.
package pitch

import (
	"fmt"
	"strings"
)

var NoteNames = []string{"C", "D", "E", "F", "G", "A", "B"}

var baseSemitone = map[string]int{
	"c": 0, "d": 2, "e": 4, "f": 5, "g": 7, "a": 9, "b": 11,
}

var modifierOffset = map[string]int{
	"b": -1, "bb": -2, "#": 1, "x": 2, "##": 2, "n": 0,
}

// Spelling is a note letter plus accidental, without octave.
type Spelling struct {
	NoteName string
	Modifier string
}

// PitchClasses spells each of the twelve pitch classes using only naturals
// and sharps. Used as a fallback when no true spelling is available; it is
// not musically authoritative.
var PitchClasses = [12]Spelling{
	{"C", "n"}, {"C", "#"}, {"D", "n"}, {"D", "#"}, {"E", "n"}, {"F", "n"},
	{"F", "#"}, {"G", "n"}, {"G", "#"}, {"A", "n"}, {"A", "#"}, {"B", "n"},
}

// Signature names the major and minor key for a count of fifths.
type Signature struct {
	Major string
	Minor string
}

// KeySignatures ignores enharmonic keys above A# Maj (no E# Maj).
var KeySignatures = map[int]Signature{
	0: {"C", "A"}, 1: {"G", "E"}, 2: {"D", "B"}, 3: {"A", "F#"},
	4: {"E", "C#"}, 5: {"B", "G#"}, 6: {"F#", "D#"}, 7: {"C#", "A#"},
	8: {"G#", "E#"}, 9: {"D#", "B#"}, 10: {"A#", "F##"},
	-1: {"F", "D"}, -2: {"Bb", "G"}, -3: {"Eb", "C"}, -4: {"Ab", "F"},
	-5: {"Db", "Bb"}, -6: {"Gb", "Eb"}, -7: {"Cb", "Ab"},
}

// IsNoteName reports whether s is one of the seven note letters.
func IsNoteName(s string) bool {
	for _, n := range NoteNames {
		if strings.ToUpper(s) == n {
			return true
		}
	}
	return false
}

// SpellingToMidi returns the MIDI pitch number and pitch class for a
// spelled note. A rest (letter r) maps to (0, 0) regardless of modifier
// and octave.
func SpellingToMidi(modifier, noteName string, octave int) (int, int, error) {
	if strings.ToLower(noteName) == "r" {
		return 0, 0, nil
	}
	base, ok := baseSemitone[strings.ToLower(noteName)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown note name: %v", noteName)
	}
	offset, ok := modifierOffset[modifier]
	if !ok {
		return 0, 0, fmt.Errorf("unknown modifier: %v", modifier)
	}
	midi := (octave+1)*12 + base + offset
	pc := ((base+offset)%12 + 12) % 12
	return midi, pc, nil
}

// MidiToSpelling derives a spelling from a MIDI pitch number via the
// natural/sharp pitch class table. This is a dummy derivation, not
// musically correct pitch spelling; never use it when true spelling is
// available.
func MidiToSpelling(midiPitch int) (noteName, modifier string, octave int) {
	s := PitchClasses[((midiPitch%12)+12)%12]
	return s.NoteName, s.Modifier, midiPitch/12 - 1
}
