package cmd

import (
	"fmt"

	"github.com/manoskary/partitura/matchfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <matchfile>",
	Short: "Prints the score/performance note pairs",
	Long:  `Prints the score/performance note pairs`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		notes(args[0])
	},
}

func notes(path string) {
	f, err := matchfile.Load(path)
	if err != nil {
		panic("Could not load match file: " + err.Error())
	}

	pairs := f.NotePairs()
	for _, p := range pairs {
		midiPitch, _, err := p.Note.MidiPitch()
		pitchText := "?"
		if err == nil {
			pitchText = fmt.Sprintf("%v", midiPitch)
		}
		fmt.Printf("snote %v (%v%v%v, bar %v, beat %v) -> note %v (midi %v, velocity %v, onset %v)\n",
			p.Snote.Anchor, p.Snote.NoteName, p.Snote.Modifier, p.Snote.Octave,
			p.Snote.Bar, p.Snote.Beat,
			p.Note.Number, pitchText, p.Note.Velocity, p.Note.Onset)
	}
	fmt.Printf("%v note pairs\n", len(pairs))
}
