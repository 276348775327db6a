package documents

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/abbrls/internal/uriutil"
	"github.com/bmatcuk/doublestar/v4"
)

// LanguageRule assigns a language to documents whose path matches Pattern
type LanguageRule struct {
	Pattern    string
	LanguageID string
}

// LanguageOverrides reassigns document languages by glob. Patterns without a
// slash match the file name; other patterns match the path relative to Root,
// or the absolute path when Root is empty. The zero value matches nothing.
type LanguageOverrides struct {
	Root  string
	Rules []LanguageRule
}

// NewLanguageOverrides compiles a glob to language ID mapping. Longer
// patterns are tried first, so "**/*.module.css" beats "*.css".
func NewLanguageOverrides(root string, globs map[string]string) (LanguageOverrides, error) {
	o := LanguageOverrides{Root: root, Rules: make([]LanguageRule, 0, len(globs))}
	for pattern, lang := range globs {
		if !doublestar.ValidatePattern(pattern) {
			return LanguageOverrides{}, fmt.Errorf("invalid glob pattern %q", pattern)
		}
		if lang == "" {
			return LanguageOverrides{}, fmt.Errorf("glob pattern %q has no language", pattern)
		}
		o.Rules = append(o.Rules, LanguageRule{Pattern: pattern, LanguageID: lang})
	}
	slices.SortFunc(o.Rules, func(a, b LanguageRule) int {
		if c := cmp.Compare(len(b.Pattern), len(a.Pattern)); c != 0 {
			return c
		}
		return strings.Compare(a.Pattern, b.Pattern)
	})
	return o, nil
}

// Match returns the language for the document at uri
func (o LanguageOverrides) Match(uri string) (string, bool) {
	if len(o.Rules) == 0 {
		return "", false
	}

	path := filepath.ToSlash(uriutil.URIToPath(uri))
	rel := path
	if o.Root != "" {
		if r, err := filepath.Rel(o.Root, uriutil.URIToPath(uri)); err == nil && !strings.HasPrefix(r, "..") {
			rel = filepath.ToSlash(r)
		}
	}
	base := filepath.Base(path)

	for _, rule := range o.Rules {
		target := rel
		if !strings.Contains(rule.Pattern, "/") {
			target = base
		}
		if ok, _ := doublestar.Match(rule.Pattern, target); ok {
			return rule.LanguageID, true
		}
	}
	return "", false
}
