// Package export renders performed notes as a Standard MIDI File.
package export

import (
	"math"
	"sort"

	"github.com/manoskary/partitura/match"
	"github.com/manoskary/partitura/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	tick      uint64
	isNoteOff bool
	key       uint8
	velocity  uint8
}

// ToSMF builds a single-track SMF from performed notes. Onset and offset
// values are multiplied by scale and rounded to ticks. Notes whose pitch
// cannot be resolved are skipped.
func ToSMF(notes []*match.Pnote, division uint16, scale float64) *smf.SMF {
	var events []noteEvent

	for _, n := range notes {
		key, _, err := n.MidiPitch()
		if err != nil {
			continue
		}
		k := uint8(util.Clamp(key, 0, 127))
		v := uint8(util.Clamp(n.Velocity, 0, 127))
		on := uint64(math.Round(n.Onset.Num() * scale))
		off := uint64(math.Round(n.Offset.Num() * scale))
		if off < on {
			off = on
		}
		events = append(events, noteEvent{tick: on, key: k, velocity: v})
		events = append(events, noteEvent{tick: off, isNoteOff: true, key: k, velocity: 0})
	}

	// smaller ticks first, note offs before note ons at the same tick
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var track smf.Track
	var prevTick uint64
	for _, evt := range events {
		delta := uint32(evt.tick - prevTick)
		if evt.isNoteOff {
			track.Add(delta, midi.NoteOff(0, evt.key))
		} else {
			track.Add(delta, midi.NoteOn(0, evt.key, evt.velocity))
		}
		prevTick = evt.tick
	}
	track.Close(0)

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(division)
	res.Tracks = append(res.Tracks, track)
	return &res
}
