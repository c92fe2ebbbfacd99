package match

import (
	"regexp"

	"github.com/manoskary/partitura/interpret"
)

// Structural patterns for the two note sub-grammars. Composite line kinds
// concatenate them with literal separators. The patterns only decompose
// text into field substrings; interpretation and validation happen in the
// record constructors.
const (
	snotePattern = `snote\(([^,]+),\[([^,]+),([^,]+)\],([^,]+),([^,]+):([^,]+),([^,]+),([^,]+),([^,]+),([^,]+),\[(.*)\]\)`

	pnotePattern = `note\(([^,]+),\[([^,]+),([^,]+)\],([^,]+),([^,]+),([^,]+),([^,]+),([^,]+)\)`

	// Matchfile version 1 performed notes lack the AdjOffset field.
	pnotePatternV1 = `note\(([^,]+),\[([^,]+),([^,]+)\],([^,]+),([^,]+),([^,]+),([^,]+)\)`
)

var (
	snoteRe   = regexp.MustCompile(`^` + snotePattern + `$`)
	pnoteRe   = regexp.MustCompile(`^` + pnotePattern + `$`)
	pnoteReV1 = regexp.MustCompile(`^` + pnotePatternV1 + `$`)

	snoteNoteRe   = regexp.MustCompile(`^` + snotePattern + `-` + pnotePattern + `\.$`)
	snoteNoteReV1 = regexp.MustCompile(`^` + snotePattern + `-` + pnotePatternV1 + `\.$`)

	snoteDeletionRe = regexp.MustCompile(`^` + snotePattern + `-deletion\.$`)
	insertionRe     = regexp.MustCompile(`^insertion-` + pnotePattern + `\.$`)
	ornamentRe      = regexp.MustCompile(`^ornament\(([^)]*)\)-` + pnotePattern + `$`)

	sustainRe = regexp.MustCompile(`^sustain\(\s*([^,]*)\s*,\s*([^,]*)\s*\)\.$`)
	softRe    = regexp.MustCompile(`^soft\(\s*([^,]*)\s*,\s*([^,]*)\s*\)\.$`)
	infoRe    = regexp.MustCompile(`^info\(\s*([^,]+)\s*,\s*(.+)\s*\)\.$`)
	metaRe    = regexp.MustCompile(`^meta\(\s*([^,]*)\s*,\s*([^,]*)\s*,\s*([^,]*)\s*,\s*([^,]*)\s*\)\.$`)
)

// captureFields matches s against re and interprets every captured field
// substring. Returns nil on a structural mismatch.
func captureFields(re *regexp.Regexp, s string) []interpret.Value {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	vals := make([]interpret.Value, len(m)-1)
	for i, g := range m[1:] {
		vals[i] = interpret.FieldRational(g, false)
	}
	return vals
}
