// Package linguist resolves programming-language names to their GitHub
// Linguist display colors. The dataset is a bundled snapshot of
// languages.yml, loaded once and immutable afterwards.
package linguist

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"langcolor/internal/palette"
	"langcolor/pkg/logging"
)

//go:embed languages.yml
var languagesYAML []byte

// Language is one dataset entry with a display color.
type Language struct {
	Name       string
	Color      palette.RGB
	Aliases    []string
	Extensions []string
}

// Table is the immutable name/alias/extension index over the dataset.
// Safe for concurrent readers once built.
type Table struct {
	byName  map[string]*Language
	byAlias map[string]*Language
	index   map[string][]*Language
}

// NotFoundError reports a query that matched no language.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no colors found for %q", e.Query)
}

// rawLanguage mirrors the languages.yml entry shape.
type rawLanguage struct {
	Color      string   `yaml:"color"`
	Aliases    []string `yaml:"aliases"`
	Extensions []string `yaml:"extensions"`
}

// Words in names, aliases, extensions, and queries. Same token class the
// dataset's own naming conventions use (letters, digits, and the symbol
// characters that appear in names like C++, C#, F*).
var wordRe = regexp.MustCompile(`[\pL\pN+*_#-]+`)

func tokenize(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Load parses the embedded dataset and builds the lookup table.
func Load() (*Table, error) {
	var raw map[string]rawLanguage
	if err := yaml.Unmarshal(languagesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parsing bundled language dataset: %w", err)
	}

	t := &Table{
		byName:  make(map[string]*Language, len(raw)),
		byAlias: make(map[string]*Language),
		index:   make(map[string][]*Language),
	}

	for name, entry := range raw {
		if entry.Color == "" {
			continue
		}
		rgb, err := palette.ParseHex(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", name, err)
		}

		lang := &Language{
			Name:       name,
			Color:      rgb,
			Aliases:    entry.Aliases,
			Extensions: entry.Extensions,
		}
		t.byName[normalize(name)] = lang

		for _, alias := range entry.Aliases {
			key := normalize(alias)
			if _, taken := t.byAlias[key]; !taken {
				t.byAlias[key] = lang
			}
		}

		t.indexWords(lang)
	}

	logging.Debug("Linguist", "Loaded %d languages from bundled dataset", len(t.byName))
	return t, nil
}

func (t *Table) indexWords(lang *Language) {
	seen := make(map[string]bool)
	add := func(text string) {
		for _, word := range tokenize(text) {
			if seen[word] {
				continue
			}
			seen[word] = true
			t.index[word] = append(t.index[word], lang)
		}
	}

	add(lang.Name)
	for _, alias := range lang.Aliases {
		add(alias)
	}
	for _, ext := range lang.Extensions {
		add(ext)
	}
}

// Len reports how many languages the table holds.
func (t *Table) Len() int {
	return len(t.byName)
}

// Lookup resolves a single language by exact name or alias match after
// case-folding and trimming. It returns a NotFoundError when nothing
// matches; no fuzzy or partial matching is attempted.
func (t *Table) Lookup(name string) (*Language, error) {
	key := normalize(name)
	if lang, ok := t.byName[key]; ok {
		return lang, nil
	}
	if lang, ok := t.byAlias[key]; ok {
		return lang, nil
	}
	return nil, &NotFoundError{Query: name}
}

// Query returns every language whose name, aliases, or extensions contain
// any word of the query, sorted by canonical name. An empty result means
// the query matched nothing; callers decide whether that is an error.
func (t *Table) Query(query string) []*Language {
	seen := make(map[*Language]bool)
	var matches []*Language
	for _, word := range tokenize(query) {
		for _, lang := range t.index[word] {
			if seen[lang] {
				continue
			}
			seen[lang] = true
			matches = append(matches, lang)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	return matches
}

// Names returns all canonical language names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for _, lang := range t.byName {
		names = append(names, lang.Name)
	}
	sort.Strings(names)
	return names
}
