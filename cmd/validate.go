package cmd

import (
	"fmt"
	"strings"

	"github.com/manoskary/partitura/match"
	"github.com/manoskary/partitura/matchfile"
	"github.com/manoskary/partitura/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <matchfile>",
	Short: "Parses a match file and reports what matched",
	Long:  `Parses a match file and reports what matched`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		validate(args[0])
	},
}

func validate(path string) {
	f, err := matchfile.Load(path)
	if err != nil {
		panic("Could not load match file: " + err.Error())
	}

	counts := make(map[string]int)
	var notCanonical int
	for _, e := range f.Entries {
		if e.Line == nil {
			continue
		}
		counts[match.LineKind(e.Line)]++
		if e.Line.Matchline() != strings.TrimSpace(e.Raw) {
			notCanonical++
			fmt.Printf("line %v is not canonical: %v\n", e.LineNum, e.Raw)
		}
	}

	for _, k := range util.SortedKeys(counts) {
		fmt.Printf("%v: %v\n", k, counts[k])
	}

	for _, e := range f.Unmatched() {
		fmt.Printf("line %v unmatched: %v\n", e.LineNum, e.Raw)
	}

	if version, ok := f.Version(); ok {
		fmt.Printf("match file version: %v\n", version)
	}
	fmt.Printf("%v lines, %v unmatched, %v not canonical\n",
		len(f.Entries), len(f.Unmatched()), notCanonical)
}
