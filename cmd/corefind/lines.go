package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vschromium/corefind/pkg/textutil"
)

var linesCmd = &cobra.Command{
	Use:   "lines <file> <offset>",
	Short: "Print the line containing a byte offset",
	Long:  "Locate the line extent around a byte offset and print that line",
	Args:  cobra.ExactArgs(2),
	RunE:  runLines,
}

func runLines(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid offset %q: %w", args[1], err)
	}

	start, length := textutil.LineExtent(content, offset, len(content))
	fmt.Fprintf(cmd.OutOrStdout(), "%d:%d: %s\n", start, length, content[start:start+length])
	return nil
}
