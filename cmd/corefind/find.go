package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vschromium/corefind/pkg/prefilter"
	"github.com/vschromium/corefind/pkg/profiles"
	"github.com/vschromium/corefind/pkg/search"
	"github.com/vschromium/corefind/pkg/textutil"
	"github.com/vschromium/corefind/pkg/walk"
	"golang.org/x/term"
)

var (
	findPattern       string
	findAlgorithm     string
	findMatchCase     bool
	findWholeWord     bool
	findProfile       string
	findProfilesFile  string
	findContextLines  int
	findIncludeHidden bool
	findMaxFileSize   int64
	findColor         string
)

var findCmd = &cobra.Command{
	Use:   "find <target>",
	Short: "Search a file or directory for a pattern",
	Long: `Search a file or directory tree for a pattern, using either an
inline --pattern/--algorithm pair or a named --profile loaded from a
--profiles-file.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&findPattern, "pattern", "", "Inline pattern to search for")
	findCmd.Flags().StringVar(&findAlgorithm, "algorithm", "plain", "Algorithm: plain, bndm32, bndm64, boyer-moore, ecma-regex, re2-regex")
	findCmd.Flags().BoolVar(&findMatchCase, "match-case", false, "Case-sensitive matching")
	findCmd.Flags().BoolVar(&findWholeWord, "whole-word", false, "Whole-word matching")
	findCmd.Flags().StringVar(&findProfile, "profile", "", "Named profile to use instead of --pattern")
	findCmd.Flags().StringVar(&findProfilesFile, "profiles-file", "", "YAML file of named profiles")
	findCmd.Flags().IntVar(&findContextLines, "context-lines", 0, "Widen the byte window around each match to 80*(N+1) bytes; only the matching line is printed")
	findCmd.Flags().BoolVar(&findIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	findCmd.Flags().Int64Var(&findMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to scan (bytes)")
	findCmd.Flags().StringVar(&findColor, "color", "auto", "Color output: auto, always, never")
}

func runFind(cmd *cobra.Command, args []string) error {
	target := args[0]

	var candidates []*profiles.Profile
	if findProfilesFile != "" {
		loaded, err := profiles.Load(findProfilesFile)
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}
		if findProfile != "" {
			p, err := profiles.Find(loaded, findProfile)
			if err != nil {
				return err
			}
			candidates = []*profiles.Profile{p}
		} else {
			candidates = loaded
		}
	} else if findPattern != "" {
		if _, err := parseAlgorithm(findAlgorithm); err != nil {
			return err
		}
		candidates = []*profiles.Profile{{
			Name:      "inline",
			Pattern:   findPattern,
			Algorithm: findAlgorithm,
			MatchCase: findMatchCase,
			WholeWord: findWholeWord,
		}}
	} else {
		return fmt.Errorf("one of --pattern or --profile/--profiles-file is required")
	}

	// Validate every profile up front so a bad pattern fails fast, before
	// the walk starts. Each worker (pkg/walk.Walk dispatches file visits to
	// a pool of goroutines) builds its own Matcher per file from scratch in
	// scanContent — a Matcher is not safe for concurrent sessions, so none
	// can be shared across that pool.
	var entries []prefilter.Entry
	for _, p := range candidates {
		m, err := p.NewMatcher()
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		m.Close()
		entries = append(entries, prefilter.Entry{ID: p.Name, Keywords: p.Keywords})
	}

	pf := prefilter.New(entries)
	styles := newFindStyles(colorEnabled(findColor, cmd))

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	var totalMatches atomic.Int64
	printMatch := func(path string, content []byte, profileName string, start, length int) {
		totalMatches.Add(1)
		lineStart, lineLen := lineExtentAround(content, start, findContextLines)
		before := content[lineStart:start]
		matching := content[start : start+length]
		after := content[start+length : lineStart+lineLen]

		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: [%s] %s%s%s\n",
			styles.path.Sprint(path),
			start,
			styles.profile.Sprint(profileName),
			before, styles.match.Sprint(string(matching)), trimNewline(after))
	}

	if info.IsDir() {
		err = walk.Walk(context.Background(), walk.Config{
			Root:          target,
			IncludeHidden: findIncludeHidden,
			MaxFileSize:   findMaxFileSize,
		}, func(f walk.File) error {
			return scanContent(f.Content, candidates, pf, func(profileName string, start, length int) {
				printMatch(f.Path, f.Content, profileName, start, length)
			})
		})
	} else {
		var content []byte
		content, err = os.ReadFile(target)
		if err == nil {
			err = scanContent(content, candidates, pf, func(profileName string, start, length int) {
				printMatch(target, content, profileName, start, length)
			})
		}
	}
	if err != nil {
		return fmt.Errorf("scanning %s: %w", target, err)
	}

	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d match(es)\n", totalMatches.Load())
	}
	return nil
}

// scanContent runs every applicable profile over content, skipping profiles
// the prefilter rules out when more than one is active. It builds a fresh
// Matcher per profile rather than reusing one across calls: scanContent runs
// once per file from pkg/walk.Walk's worker pool, and a Matcher is not safe
// for concurrent sessions (pkg/search.Matcher's documented contract).
func scanContent(content []byte, candidates []*profiles.Profile, pf *prefilter.Prefilter, onMatch func(profileName string, start, length int)) error {
	active := candidates
	if len(candidates) > 1 {
		ids := pf.Candidates(content)
		allowed := make(map[string]bool, len(ids))
		for _, id := range ids {
			allowed[id] = true
		}
		active = make([]*profiles.Profile, 0, len(candidates))
		for _, p := range candidates {
			if allowed[p.Name] {
				active = append(active, p)
			}
		}
	}

	for _, p := range active {
		m, err := p.NewMatcher()
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		params := search.NewParams(content)
		for {
			m.FindNext(params)
			if params.MatchStart < 0 {
				break
			}
			onMatch(p.Name, params.MatchStart, params.MatchLength)
		}
		m.CancelSearch(params)
		m.Close()
	}
	return nil
}

// lineExtentAround widens textutil.LineExtent's window to 80*(contextLines+1)
// bytes on each side of offset. The result is still the single line that
// contains offset, clipped to that window; no lines before or after it are
// included, and contextLines == 0 still leaves an 80-byte window.
func lineExtentAround(content []byte, offset, contextLines int) (start, length int) {
	window := 80 * (contextLines + 1)
	return textutil.LineExtent(content, offset, window)
}

func trimNewline(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

var algorithmByName = map[string]search.AlgorithmKind{
	"plain":       search.Plain,
	"bndm32":      search.Bndm32,
	"bndm64":      search.Bndm64,
	"boyer-moore": search.BoyerMoore,
	"ecma-regex":  search.EcmaRegex,
	"re2-regex":   search.Re2Regex,
}

func parseAlgorithm(name string) (search.AlgorithmKind, error) {
	kind, ok := algorithmByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
	return kind, nil
}

// findStyles holds color formatters for find output, matching the teacher's
// report.go pattern of a disable-on-request styles bundle.
type findStyles struct {
	path    *color.Color
	profile *color.Color
	match   *color.Color
}

func newFindStyles(enabled bool) *findStyles {
	s := &findStyles{
		path:    color.New(color.FgHiBlue),
		profile: color.New(color.Bold, color.FgHiGreen),
		match:   color.New(color.Bold, color.FgYellow),
	}
	if !enabled {
		s.path.DisableColor()
		s.profile.DisableColor()
		s.match.DisableColor()
	}
	return s
}

func colorEnabled(mode string, cmd *cobra.Command) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}
