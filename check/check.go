// Package check implements the reconciliation pass: for every discovered
// table, every language's entry set is diffed against the base language's
// entry set, and the results are folded into run statistics and a report.
package check

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zygoat/CheckStrings/i18n"
	"github.com/zygoat/CheckStrings/lproj"
	"github.com/zygoat/CheckStrings/stringsfile"
)

// ---------------------------------------------------------------------------
// Options and results
// ---------------------------------------------------------------------------

// Options configures one reconciliation run.
type Options struct {
	// Base is the reference language; every other language is validated
	// against its key set.
	Base string
	// Out receives the report. Defaults to os.Stdout when nil.
	Out io.Writer
	// Warnf receives soft-error diagnostics (uncertain encodings, files
	// that exist but cannot be read). Optional.
	Warnf func(format string, args ...any)
	// Infof receives verbose per-file diagnostics. Optional.
	Infof func(format string, args ...any)
}

// Diff is the reconciliation result for one (table, language) pair.
type Diff struct {
	Table    lproj.Table
	Language string

	// Missing holds keys present in the base table but absent here,
	// sorted. For an absent or unreadable file this is every base key.
	Missing []string
	// Unused holds keys present here but absent from the base table,
	// sorted.
	Unused []string
	// BaseValues carries the base-language value for each missing key,
	// shown in the report for translator context.
	BaseValues map[string]string

	// FileMissing is set when no file exists on disk for this pair.
	FileMissing bool
	// OpenFailed is set when the file exists but could not be read or
	// decoded. Implies FileMissing semantics for statistics.
	OpenFailed bool
}

// Consistent reports whether this pair has no discrepancies at all.
func (d Diff) Consistent() bool {
	return !d.FileMissing && !d.OpenFailed && len(d.Missing) == 0 && len(d.Unused) == 0
}

// Outcome is the three-valued final status of a run.
type Outcome int

const (
	// Good: every file present, no missing and no unused strings.
	Good Outcome = iota
	// Incomplete: at least one string (or whole file) is missing.
	Incomplete
	// Inconsistent: unused strings exist but nothing is missing.
	Inconsistent
)

// Stats accumulates process-wide counters across the whole run. It is a
// plain value threaded through the reconciliation loop, not shared state.
type Stats struct {
	Tables    int
	Languages int
	// Pairs is the number of (table, non-base language) combinations
	// examined.
	Pairs int

	MissingFiles   int
	MissingStrings int
	UnusedStrings  int

	// Consistent lists the labels of all fully consistent pairs, in
	// report order.
	Consistent []string
}

func (s *Stats) add(d Diff) {
	if d.FileMissing || d.OpenFailed {
		s.MissingFiles++
	}
	s.MissingStrings += len(d.Missing)
	s.UnusedStrings += len(d.Unused)
}

// Outcome selects the final status by priority: missing beats unused beats
// none. A missing file with nothing to report against it (empty base) still
// makes the run incomplete.
func (s Stats) Outcome() Outcome {
	switch {
	case s.MissingStrings > 0:
		return Incomplete
	case s.UnusedStrings > 0:
		return Inconsistent
	case s.MissingFiles > 0:
		return Incomplete
	default:
		return Good
	}
}

// Summary renders the final one-sentence verdict with count-aware wording.
func (s Stats) Summary() string {
	var parts []string
	if s.MissingFiles > 0 {
		parts = append(parts, fmt.Sprintf(i18n.N("%d file is missing", "%d files are missing", s.MissingFiles), s.MissingFiles))
	}
	if s.MissingStrings > 0 {
		parts = append(parts, fmt.Sprintf(i18n.N("%d string is missing", "%d strings are missing", s.MissingStrings), s.MissingStrings))
	}
	if s.UnusedStrings > 0 {
		parts = append(parts, fmt.Sprintf(i18n.N("%d string is unused", "%d strings are unused", s.UnusedStrings), s.UnusedStrings))
	}
	if len(parts) == 0 {
		return i18n.T("Everything looks good.")
	}
	return joinAnd(parts) + "."
}

// joinAnd joins parts with commas and a final "and", matching how the
// sentence reads in English. The conjunction itself is translatable.
func joinAnd(parts []string) string {
	switch len(parts) {
	case 1:
		return parts[0]
	default:
		and := i18n.T(" and ")
		return strings.Join(parts[:len(parts)-1], ", ") + and + parts[len(parts)-1]
	}
}

// ---------------------------------------------------------------------------
// Reconciliation
// ---------------------------------------------------------------------------

// Run reconciles every table in the registry against the base language and
// writes the report to opts.Out. The returned error is fatal (no base
// language anywhere); discrepancies are never an error, they are the
// returned statistics.
func Run(reg *lproj.Registry, opts Options) (Stats, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	infof := opts.Infof
	if infof == nil {
		infof = func(string, ...any) {}
	}

	langs, err := reg.Universe(opts.Base)
	if err != nil {
		return Stats{}, err
	}

	tables := reg.Tables()
	stats := Stats{
		Tables:    len(tables),
		Languages: len(langs),
		Pairs:     len(tables) * (len(langs) - 1),
	}

	var blocks []string
	for _, t := range tables {
		diffs := reconcileTable(t, langs, infof, warnf)

		var problems []Diff
		for _, d := range diffs {
			stats.add(d)
			switch {
			case d.Language != langs[0] && d.Consistent():
				stats.Consistent = append(stats.Consistent, fmt.Sprintf("%s [%s]", t.ID(), d.Language))
			case !d.Consistent():
				problems = append(problems, d)
			}
		}
		if len(problems) > 0 {
			blocks = append(blocks, renderTable(t, problems))
		}
	}

	writeReport(out, stats, blocks)
	return stats, nil
}

// reconcileTable diffs one table across the whole language universe. The
// base language comes first in langs, so its entry set is resolved before
// any comparison. An absent base file leaves an empty base set: other
// languages then report no missing strings, only unused ones.
func reconcileTable(t lproj.Table, langs []string, infof, warnf func(string, ...any)) []Diff {
	base := langs[0]
	baseSet := &stringsfile.File{}

	diffs := make([]Diff, 0, len(langs))
	for _, lang := range langs {
		set, d := loadSet(t, lang, warnf)
		if set != nil {
			infof("%s: %s", t.Path(lang), set.Encoding())
		}

		if lang == base {
			if set != nil {
				baseSet = set
			}
			// The base is the reference; only its file's presence is
			// reported, never key diffs against itself.
			if d.FileMissing || d.OpenFailed {
				diffs = append(diffs, d)
			}
			continue
		}

		if set == nil {
			// Absent or unreadable: every base key counts as missing.
			d.Missing = baseSet.Keys()
			d.BaseValues = baseValues(baseSet, d.Missing)
			diffs = append(diffs, d)
			continue
		}

		for _, k := range baseSet.Keys() {
			if _, ok := set.Get(k); !ok {
				d.Missing = append(d.Missing, k)
			}
		}
		for _, k := range set.Keys() {
			if _, ok := baseSet.Get(k); !ok {
				d.Unused = append(d.Unused, k)
			}
		}
		sort.Strings(d.Missing)
		sort.Strings(d.Unused)
		d.BaseValues = baseValues(baseSet, d.Missing)
		diffs = append(diffs, d)
	}

	return diffs
}

// loadSet resolves the entry set for one pair using the two-step contract:
// existence first, then parse. A nil set means the pair has no usable
// entries; the returned Diff records which failure mode applies.
func loadSet(t lproj.Table, lang string, warnf func(string, ...any)) (*stringsfile.File, Diff) {
	d := Diff{Table: t, Language: lang}
	path := t.Path(lang)

	if _, err := os.Stat(path); err != nil {
		d.FileMissing = true
		return nil, d
	}

	set, err := stringsfile.ParseFile(path)
	if err != nil {
		warnf("%v", err)
		d.OpenFailed = true
		return nil, d
	}

	if !set.EncodingCertain() {
		warnf("%s: encoding is not UTF-8 or UTF-16, assuming %s", path, set.Encoding())
	}
	return set, d
}

func baseValues(base *stringsfile.File, keys []string) map[string]string {
	if len(keys) == 0 {
		return nil
	}
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, _ := base.Get(k)
		values[k] = v
	}
	return values
}

// ---------------------------------------------------------------------------
// Report rendering
// ---------------------------------------------------------------------------

func writeReport(w io.Writer, stats Stats, blocks []string) {
	for _, label := range stats.Consistent {
		fmt.Fprintf(w, "%s %s\n", i18n.T("consistent:"), label)
	}
	n := len(stats.Consistent)
	fmt.Fprintf(w, i18n.N("%d of %d files is consistent.", "%d of %d files are consistent.", n)+"\n", n, stats.Pairs)

	for _, block := range blocks {
		fmt.Fprintf(w, "\n%s", block)
	}

	fmt.Fprintf(w, "\n%s\n", stats.Summary())
}

// renderTable renders the problem block for one table: a header with the
// table identity, then one entry per problematic language in universe
// order.
func renderTable(t lproj.Table, problems []Diff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.ID())

	for _, d := range problems {
		rel := d.Language + lproj.DirSuffix + "/" + t.Filename

		switch {
		case d.OpenFailed:
			n := len(d.Missing)
			fmt.Fprintf(&b, "  "+i18n.N("%s is missing altogether (failed to open; %d string)", "%s is missing altogether (failed to open; %d strings)", n)+"\n", rel, n)

		case d.FileMissing:
			n := len(d.Missing)
			fmt.Fprintf(&b, "  "+i18n.N("%s is missing altogether (%d string)", "%s is missing altogether (%d strings)", n)+"\n", rel, n)

		default:
			if n := len(d.Missing); n > 0 {
				fmt.Fprintf(&b, "  "+i18n.N("%s is missing %d string:", "%s is missing %d strings:", n)+"\n", rel, n)
				// Keys and values are kept exactly as they appear in the
				// base file, so the lines below can be pasted as-is.
				for _, k := range d.Missing {
					fmt.Fprintf(&b, "    \"%s\" = \"%s\";\n", k, d.BaseValues[k])
				}
			}
			if n := len(d.Unused); n > 0 {
				fmt.Fprintf(&b, "  "+i18n.N("%s has %d unused string:", "%s has %d unused strings:", n)+"\n", rel, n)
				for _, k := range d.Unused {
					fmt.Fprintf(&b, "    \"%s\"\n", k)
				}
			}
		}
	}

	return b.String()
}
