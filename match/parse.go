package match

import (
	"errors"
	"fmt"

	"github.com/manoskary/partitura/constants"
)

// ErrNoMatch reports that a line fits none of the line grammars. Every
// parse failure wraps it; the wrapped message may carry the most specific
// validation failure seen along the way, for diagnostics only.
var ErrNoMatch = errors.New("line does not fit any match line grammar")

// A tryParseFunc attempts one line kind. (nil, nil) is a structural
// mismatch, (nil, err) a validation failure after a structural match;
// both make the dispatcher move on to the next kind.
type tryParseFunc func(string) (Line, error)

var lineKinds = []tryParseFunc{
	trySnoteNote,
	trySnoteDeletion,
	tryInsertionNote,
	trySustainPedal,
	trySoftPedal,
	tryInfo,
	tryMeta,
}

// ParseLine classifies one line of a match file, trying each line kind in
// fixed priority order: snote-note pair, deletion, insertion, sustain,
// soft, info, meta. A validation failure abandons that kind for this line,
// since the line might coincidentally fit a later grammar. When every kind
// fails the error wraps ErrNoMatch; ParseLine never panics.
func ParseLine(s string) (Line, error) {
	var lastErr error
	for _, try := range lineKinds {
		line, err := try(s)
		if line != nil {
			return line, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w (%v)", ErrNoMatch, lastErr)
	}
	return nil, ErrNoMatch
}

func trySnoteNote(s string) (Line, error) {
	version := float64(constants.LatestVersion)
	hasAdjOffset := true
	vals := captureFields(snoteNoteRe, s)
	if vals == nil {
		vals = captureFields(snoteNoteReV1, s)
		version = constants.LegacyVersion
		hasAdjOffset = false
	}
	if vals == nil {
		return nil, nil
	}
	snote, err := newSnoteFromValues(vals[:11])
	if err != nil {
		return nil, err
	}
	note, err := newPnoteFromValues(vals[11:], version, hasAdjOffset)
	if err != nil {
		return nil, err
	}
	return NewSnoteNote(snote, note, true), nil
}

func trySnoteDeletion(s string) (Line, error) {
	vals := captureFields(snoteDeletionRe, s)
	if vals == nil {
		return nil, nil
	}
	snote, err := newSnoteFromValues(vals)
	if err != nil {
		return nil, err
	}
	return &SnoteDeletion{Snote: snote}, nil
}

func tryInsertionNote(s string) (Line, error) {
	vals := captureFields(insertionRe, s)
	if vals == nil {
		return nil, nil
	}
	note, err := newPnoteFromValues(vals, constants.LatestVersion, true)
	if err != nil {
		return nil, err
	}
	return &InsertionNote{Pnote: note}, nil
}

func trySustainPedal(s string) (Line, error) {
	vals := captureFields(sustainRe, s)
	if vals == nil {
		return nil, nil
	}
	return &SustainPedal{Time: vals[0], Value: vals[1]}, nil
}

func trySoftPedal(s string) (Line, error) {
	vals := captureFields(softRe, s)
	if vals == nil {
		return nil, nil
	}
	return &SoftPedal{Time: vals[0], Value: vals[1]}, nil
}

func tryInfo(s string) (Line, error) {
	vals := captureFields(infoRe, s)
	if vals == nil {
		return nil, nil
	}
	return &Info{Attribute: vals[0], Value: vals[1]}, nil
}

func tryMeta(s string) (Line, error) {
	vals := captureFields(metaRe, s)
	if vals == nil {
		return nil, nil
	}
	return &Meta{Attribute: vals[0], Value: vals[1], Bar: vals[2], TimeInBeats: vals[3]}, nil
}

// ParseOrnament parses an ornament line. Ornament lines are not part of
// the ParseLine dispatch order; callers wanting them ask explicitly.
func ParseOrnament(s string) (*OrnamentNote, error) {
	vals := captureFields(ornamentRe, s)
	if vals == nil {
		return nil, ErrNoMatch
	}
	note, err := newPnoteFromValues(vals[1:], constants.LatestVersion, true)
	if err != nil {
		return nil, err
	}
	return &OrnamentNote{Anchor: vals[0], Note: note}, nil
}
