// Package profiles loads named, reusable search definitions from a YAML
// file, generalizing the teacher's pkg/types.Rule / pkg/rule YAML-loaded
// "detection rule" format from secret-detection patterns to arbitrary named
// search profiles a corefind host can apply by name.
package profiles

import (
	"fmt"
	"os"

	"github.com/vschromium/corefind/pkg/search"
	"gopkg.in/yaml.v3"
)

// Profile is one named, reusable search definition.
type Profile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Pattern     string   `yaml:"pattern"`
	Algorithm   string   `yaml:"algorithm"`
	MatchCase   bool     `yaml:"match_case"`
	WholeWord   bool     `yaml:"whole_word"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

// file is the on-disk shape: a top-level list under "profiles".
type file struct {
	Profiles []Profile `yaml:"profiles"`
}

var algorithmNames = map[string]search.AlgorithmKind{
	"plain":       search.Plain,
	"bndm32":      search.Bndm32,
	"bndm64":      search.Bndm64,
	"boyer-moore": search.BoyerMoore,
	"ecma-regex":  search.EcmaRegex,
	"re2-regex":   search.Re2Regex,
}

// AlgorithmKind resolves the profile's Algorithm string to a search.AlgorithmKind.
func (p *Profile) AlgorithmKind() (search.AlgorithmKind, error) {
	kind, ok := algorithmNames[p.Algorithm]
	if !ok {
		return 0, fmt.Errorf("profile %q: unknown algorithm %q", p.Name, p.Algorithm)
	}
	return kind, nil
}

// Options builds the search.Options bitset for this profile.
func (p *Profile) Options() search.Options {
	var opts search.Options
	if p.MatchCase {
		opts |= search.MatchCase
	}
	if p.WholeWord {
		opts |= search.MatchWholeWord
	}
	return opts
}

// NewMatcher constructs the search.Matcher this profile describes.
func (p *Profile) NewMatcher() (search.Matcher, error) {
	kind, err := p.AlgorithmKind()
	if err != nil {
		return nil, err
	}
	return search.New(kind, []byte(p.Pattern), p.Options())
}

// Load reads a YAML profiles file from path.
func Load(path string) ([]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML profile data, the way Load does for a file on disk.
func Parse(data []byte) ([]*Profile, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profiles file: %w", err)
	}
	profiles := make([]*Profile, 0, len(f.Profiles))
	for i := range f.Profiles {
		p := f.Profiles[i]
		if p.Name == "" {
			return nil, fmt.Errorf("profile at index %d is missing a name", i)
		}
		profiles = append(profiles, &p)
	}
	return profiles, nil
}

// Find looks up a profile by name.
func Find(list []*Profile, name string) (*Profile, error) {
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no profile named %q", name)
}
