package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "corefind",
	Short: "corefind - in-memory pattern search over files and buffers",
	Long: `corefind is a fast pattern-search tool built on the same matching
engines a code-editor's in-memory search box would use: plain substring,
BNDM, Boyer-Moore, and ECMAScript/RE2-flavored regular expressions, with
whole-word filtering and gitignore-aware directory walking.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (omit the match-count summary)")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(kindCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
