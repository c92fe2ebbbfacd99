package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpellingToMidi(t *testing.T) {
	assert := assert.New(t)

	midi, pc, err := SpellingToMidi("n", "E", 4)
	assert.NoError(err)
	assert.Equal(64, midi)
	assert.Equal(4, pc)

	midi, pc, err = SpellingToMidi("#", "C", 4)
	assert.NoError(err)
	assert.Equal(61, midi)
	assert.Equal(1, pc)

	// flats wrap the pitch class below C
	midi, pc, err = SpellingToMidi("b", "C", 4)
	assert.NoError(err)
	assert.Equal(59, midi)
	assert.Equal(11, pc)

	// both double sharp notations
	m1, _, err := SpellingToMidi("x", "F", 3)
	assert.NoError(err)
	m2, _, err := SpellingToMidi("##", "F", 3)
	assert.NoError(err)
	assert.Equal(m1, m2)

	// case-insensitive letters
	midi, _, err = SpellingToMidi("n", "e", 4)
	assert.NoError(err)
	assert.Equal(64, midi)
}

func TestRestMapsToSentinel(t *testing.T) {
	assert := assert.New(t)
	for _, modifier := range []string{"n", "#", "b", "weird"} {
		midi, pc, err := SpellingToMidi(modifier, "r", 7)
		assert.NoError(err)
		assert.Equal(0, midi)
		assert.Equal(0, pc)
	}
}

func TestUnknownLetterAndModifier(t *testing.T) {
	assert := assert.New(t)
	_, _, err := SpellingToMidi("n", "H", 4)
	assert.Error(err)
	_, _, err = SpellingToMidi("q", "C", 4)
	assert.Error(err)
}

func TestMidiToSpelling(t *testing.T) {
	assert := assert.New(t)

	name, modifier, octave := MidiToSpelling(64)
	assert.Equal("E", name)
	assert.Equal("n", modifier)
	assert.Equal(4, octave)

	name, modifier, octave = MidiToSpelling(61)
	assert.Equal("C", name)
	assert.Equal("#", modifier)
	assert.Equal(4, octave)

	// round trip through the table for the full range
	for midi := 0; midi < 128; midi++ {
		name, modifier, octave := MidiToSpelling(midi)
		back, _, err := SpellingToMidi(modifier, name, octave)
		assert.NoError(err)
		assert.Equal(midi, back)
	}
}

func TestKeySignatures(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Signature{"C", "A"}, KeySignatures[0])
	assert.Equal(Signature{"Eb", "C"}, KeySignatures[-3])
	assert.Equal(Signature{"A#", "F##"}, KeySignatures[10])
}

func TestIsNoteName(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsNoteName("E"))
	assert.True(IsNoteName("b"))
	assert.False(IsNoteName("H"))
	assert.False(IsNoteName("r"))
}
