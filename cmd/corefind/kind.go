package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vschromium/corefind/pkg/textutil"
)

var kindCmd = &cobra.Command{
	Use:   "kind <file>",
	Short: "Classify a file's text encoding",
	Long:  "Report whether a file is ASCII, UTF-8 (with or without BOM), or probably binary",
	Args:  cobra.ExactArgs(1),
	RunE:  runKind,
}

func runKind(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), textutil.GetKind(content))
	return nil
}
