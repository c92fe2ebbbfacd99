package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/manoskary/partitura/matchfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <matchfile> [output]",
	Short: "Rewrites a match file in canonical form",
	Long:  `Rewrites a match file in canonical form. Unmatched lines are kept verbatim. Without an output path the file is rewritten in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		out := args[0]
		if len(args) == 2 {
			out = args[1]
		}
		rewrite(args[0], out)
	},
}

func rewrite(in, out string) {
	f, err := matchfile.Load(in)
	if err != nil {
		panic("Could not load match file: " + err.Error())
	}

	// write through a temp file so a failed run never truncates the target
	tmp := filepath.Join(filepath.Dir(out), uuid.New().String()+".tmp")
	if err := f.WriteFile(tmp); err != nil {
		os.Remove(tmp)
		panic("Could not write match file: " + err.Error())
	}
	if err := os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
		panic("Could not move match file into place: " + err.Error())
	}

	fmt.Printf("Rewrote %v lines to %v (%v unmatched kept verbatim)\n",
		len(f.Entries), out, len(f.Unmatched()))
}
