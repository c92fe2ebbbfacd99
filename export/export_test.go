package export

import (
	"testing"

	"github.com/manoskary/partitura/match"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func mustPnote(t *testing.T, line string) *match.Pnote {
	t.Helper()
	n, err := match.ParsePnote(line)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestToSMFBuildsOneTrack(t *testing.T) {
	assert := assert.New(t)

	notes := []*match.Pnote{
		mustPnote(t, "note(0,[E,n],4,0,480,480,49)"),
		mustPnote(t, "note(1,[C,#],5,480,960,960,200)"),
	}
	s := ToSMF(notes, 480, 1.0)

	assert.Equal(smf.MetricTicks(480), s.TimeFormat)
	assert.Equal(1, len(s.Tracks))
	// two on/off pairs plus end of track
	assert.Equal(5, len(s.Tracks[0]))
}

func TestToSMFOrdersAndClampsEvents(t *testing.T) {
	assert := assert.New(t)

	notes := []*match.Pnote{
		mustPnote(t, "note(1,[C,#],5,480,960,960,200)"),
		mustPnote(t, "note(0,[E,n],4,0,480,480,49)"),
	}
	s := ToSMF(notes, 480, 1.0)
	track := s.Tracks[0]

	var ch, key, vel uint8

	// first event is the earliest note on despite input order
	assert.True(track[0].Message.GetNoteOn(&ch, &key, &vel))
	assert.Equal(uint8(64), key)
	assert.Equal(uint8(49), vel)
	assert.Equal(uint32(0), track[0].Delta)

	// at tick 480 the E off comes before the C# on
	assert.True(track[1].Message.GetNoteOff(&ch, &key, &vel))
	assert.Equal(uint8(64), key)
	assert.Equal(uint32(480), track[1].Delta)

	assert.True(track[2].Message.GetNoteOn(&ch, &key, &vel))
	assert.Equal(uint8(73), key)
	// velocity 200 clamps into MIDI range
	assert.Equal(uint8(127), vel)
	assert.Equal(uint32(0), track[2].Delta)
}

func TestToSMFScalesTicks(t *testing.T) {
	assert := assert.New(t)

	notes := []*match.Pnote{mustPnote(t, "note(0,[E,n],4,1,2,2,49)")}
	s := ToSMF(notes, 480, 480.0)
	track := s.Tracks[0]

	assert.Equal(uint32(480), track[0].Delta)
	assert.Equal(uint32(480), track[1].Delta)
}
