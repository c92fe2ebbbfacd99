package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "partitura",
	Short: "Match file tools",
	Long:  `Parse, validate, rewrite and export score-to-performance match files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
