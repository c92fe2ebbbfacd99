package cmd

import (
	"fmt"

	"github.com/manoskary/partitura/export"
	"github.com/manoskary/partitura/matchfile"
	"github.com/spf13/cobra"
)

var exportDivision uint16
var exportScale float64

func init() {
	exportCmd.Flags().Uint16Var(&exportDivision, "division", 480, "ticks per quarter note")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 1.0, "factor from match onset/offset units to ticks")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <matchfile> <output.mid>",
	Short: "Exports the performed notes as a MIDI file",
	Long:  `Exports the performed notes (paired notes and insertions) as a Standard MIDI File`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		exportMidi(args[0], args[1])
	},
}

func exportMidi(in, out string) {
	f, err := matchfile.Load(in)
	if err != nil {
		panic("Could not load match file: " + err.Error())
	}

	notes := f.Pnotes()
	s := export.ToSMF(notes, exportDivision, exportScale)
	if err := s.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v performed notes to %v\n", len(notes), out)
}
