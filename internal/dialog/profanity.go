package dialog

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultDenyList holds the configured insult patterns. A pattern matching
// any single whitespace-delimited token condemns the whole subject.
var DefaultDenyList = []string{
	"idiot",
	"depp",
	"trottel",
	"dumm",
	"blöd",
	"bloed",
	"arsch",
	"schei(ss|ß)e",
	"penner",
}

// Filter screens free text against a deny-list of regular expressions.
// It is stateless after construction and safe for concurrent use.
type Filter struct {
	patterns []*regexp.Regexp
}

// NewFilter compiles the deny-list. Patterns are applied case-insensitively
// to every whitespace-delimited token of the screened text.
func NewFilter(denyList []string) (*Filter, error) {
	patterns := make([]*regexp.Regexp, 0, len(denyList))
	for _, entry := range denyList {
		pattern, err := regexp.Compile("(?i)" + entry)
		if err != nil {
			return nil, fmt.Errorf("compile deny-list entry %q: %w", entry, err)
		}
		patterns = append(patterns, pattern)
	}
	return &Filter{patterns: patterns}, nil
}

// Screen reports whether the text contains a deny-listed token.
func (f *Filter) Screen(text string) bool {
	for _, word := range strings.Fields(text) {
		for _, pattern := range f.patterns {
			if pattern.MatchString(word) {
				return true
			}
		}
	}
	return false
}
