// Package lproj recognizes language bundle paths of the form
//
//	<root>/<lang>.lproj/<filename>
//
// and groups them into language-agnostic tables. Recognition works on path
// segments from the end of the path, never on pattern matching over the
// whole string: the final segment is the filename and the segment directly
// above it must carry the .lproj suffix. Only that segment counts, so a
// bundle directory nested inside another bundle directory resolves to the
// innermost one.
package lproj

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DirSuffix is the marker carried by language bundle directories.
const DirSuffix = ".lproj"

// Wildcard replaces the language part in a table identity.
const Wildcard = "*"

// ErrNoBaseLanguage is returned by Registry.Universe when the base language
// was never observed in any recognized file.
var ErrNoBaseLanguage = errors.New("no base-language strings found")

// ---------------------------------------------------------------------------
// Path decomposition
// ---------------------------------------------------------------------------

// Table identifies one logical strings table independent of language:
// everything about its path except the language part of the bundle
// directory.
type Table struct {
	// Root is the path above the bundle directory; may be empty for
	// tables at the top of the search tree.
	Root string
	// Filename is the final path segment shared by all languages.
	Filename string
}

// ID returns the canonical identity string, with the language segment
// replaced by a wildcard. Two paths that differ only in their language
// directory produce the same ID.
func (t Table) ID() string {
	if t.Root == "" {
		return Wildcard + DirSuffix + "/" + t.Filename
	}
	return t.Root + "/" + Wildcard + DirSuffix + "/" + t.Filename
}

// Path reconstructs the on-disk path of this table for one language.
func (t Table) Path(lang string) string {
	dir := lang + DirSuffix
	if t.Root == "" {
		return filepath.FromSlash(dir + "/" + t.Filename)
	}
	return filepath.FromSlash(t.Root + "/" + dir + "/" + t.Filename)
}

// Location is one recognized file: a table plus the language it belongs to.
type Location struct {
	Table    Table
	Language string
}

// Split decomposes a raw path into a Location. The second return value is
// false when the path is not a recognized localization file; that is an
// expected outcome, not an error.
func Split(path string) (Location, bool) {
	segs := strings.Split(filepath.ToSlash(path), "/")
	if len(segs) < 2 {
		return Location{}, false
	}

	filename := segs[len(segs)-1]
	bundle := segs[len(segs)-2]
	if filename == "" {
		return Location{}, false
	}

	lang, found := strings.CutSuffix(bundle, DirSuffix)
	if !found || lang == "" {
		return Location{}, false
	}

	return Location{
		Table: Table{
			Root:     strings.Join(segs[:len(segs)-2], "/"),
			Filename: filename,
		},
		Language: lang,
	}, true
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// Registry accumulates recognized locations into the canonical set of
// tables, each with the set of languages it was seen in.
type Registry struct {
	tables map[string]*tableLangs
}

type tableLangs struct {
	table Table
	langs map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*tableLangs)}
}

// Add records one recognized location.
func (r *Registry) Add(loc Location) {
	id := loc.Table.ID()
	tl, ok := r.tables[id]
	if !ok {
		tl = &tableLangs{table: loc.Table, langs: make(map[string]bool)}
		r.tables[id] = tl
	}
	tl.langs[loc.Language] = true
}

// Len returns the number of distinct tables.
func (r *Registry) Len() int { return len(r.tables) }

// Tables returns all tables sorted by identity. Reconciliation iterates
// this order so report output is deterministic regardless of discovery
// order.
func (r *Registry) Tables() []Table {
	ids := make([]string, 0, len(r.tables))
	for id := range r.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tables := make([]Table, len(ids))
	for i, id := range ids {
		tables[i] = r.tables[id].table
	}
	return tables
}

// Universe returns every language observed across all tables, sorted
// alphabetically with base relocated to position 0. It fails when base was
// never seen anywhere, since there is no reference set to diff against.
func (r *Registry) Universe(base string) ([]string, error) {
	seen := make(map[string]bool)
	for _, tl := range r.tables {
		for lang := range tl.langs {
			seen[lang] = true
		}
	}

	if !seen[base] {
		return nil, fmt.Errorf("%w: no %s%s directory anywhere under the search root", ErrNoBaseLanguage, base, DirSuffix)
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		if lang != base {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	return append([]string{base}, langs...), nil
}
