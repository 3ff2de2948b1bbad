// Package stringsfile implements reading of .strings localization tables.
//
// Format: one statement per line, of the shape
//
//	"KEY" = "VALUE";
//
// optionally decorated with /* block comments */. Lines that do not match
// the statement shape (blank lines, comment-only lines, anything malformed)
// are skipped. Block comments spanning several lines are not supported —
// each line is treated independently, so the body of a multi-line comment
// simply fails to parse as a statement and is ignored.
//
// Files may be UTF-8 (with or without BOM) or UTF-16 (BOM required). A file
// that is neither is decoded as ISO 8859-1 as a last resort, and the result
// is flagged as uncertain so callers can warn about it.
//
// File naming convention: each language is stored as a separate file under
// its language bundle directory:
//
//	Resources/en.lproj/Localizable.strings  (base)
//	Resources/de.lproj/Localizable.strings  (translation)
package stringsfile

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ---------------------------------------------------------------------------
// Encodings
// ---------------------------------------------------------------------------

// Encoding labels the byte encoding a file was decoded from.
type Encoding string

const (
	UTF8    Encoding = "UTF-8"
	UTF16LE Encoding = "UTF-16LE"
	UTF16BE Encoding = "UTF-16BE"
	Latin1  Encoding = "ISO-8859-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode converts raw file bytes to a UTF-8 string. The returned certain
// flag is false only for the Latin-1 fallback, where the true encoding of
// the file is unknown.
func decode(data []byte) (text string, enc Encoding, certain bool, err error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), UTF8, true, nil

	case bytes.HasPrefix(data, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", UTF16LE, false, fmt.Errorf("decoding UTF-16LE: %w", err)
		}
		return string(out), UTF16LE, true, nil

	case bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil {
			return "", UTF16BE, false, fmt.Errorf("decoding UTF-16BE: %w", err)
		}
		return string(out), UTF16BE, true, nil

	case utf8.Valid(data):
		return string(data), UTF8, true, nil
	}

	// Last resort: ISO 8859-1 maps every byte to a code point, so this
	// cannot fail, but the true encoding of the file is anyone's guess.
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", Latin1, false, fmt.Errorf("decoding ISO 8859-1: %w", err)
	}
	return string(out), Latin1, false, nil
}

// ---------------------------------------------------------------------------
// File model
// ---------------------------------------------------------------------------

// File is a parsed .strings table: a key → value mapping plus the encoding
// it was decoded from.
type File struct {
	entries map[string]string
	enc     Encoding
	certain bool
}

// Get returns the value for a key and whether the key exists.
func (f *File) Get(key string) (string, bool) {
	v, ok := f.entries[key]
	return v, ok
}

// Keys returns all keys sorted lexicographically. File order is
// deliberately not preserved; reports always iterate sorted keys.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.entries))
	for k := range f.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct keys.
func (f *File) Len() int { return len(f.entries) }

// Encoding returns the encoding label the file was decoded from.
func (f *File) Encoding() Encoding { return f.enc }

// EncodingCertain reports whether the encoding was positively identified.
// False means the Latin-1 fallback was used and the label is a guess.
func (f *File) EncodingCertain() bool { return f.certain }

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// statementRe matches one `"KEY" = "VALUE";` statement. KEY may contain
// escaped quotes but no bare ones; VALUE is everything up to the `";` that
// closes the line, so embedded quotes in values survive.
var statementRe = regexp.MustCompile(`^\s*"((?:\\.|[^"\\])*)"\s*=\s*"(.*)"\s*;\s*$`)

// ParseFile reads and parses a .strings file from disk. A missing file is
// reported via the wrapped os error (check with errors.Is(err,
// fs.ErrNotExist)); any other error means the file exists but could not be
// read or decoded.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse parses .strings content from a byte slice. An empty or comment-only
// file yields a valid empty File.
func Parse(data []byte) (*File, error) {
	text, enc, certain, err := decode(data)
	if err != nil {
		return nil, err
	}

	f := &File{entries: make(map[string]string), enc: enc, certain: certain}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	for _, line := range strings.Split(text, "\n") {
		line = stripComments(line)
		m := statementRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Duplicate keys overwrite: last statement in the file wins.
		f.entries[m[1]] = m[2]
	}

	return f, nil
}

// stripComments removes /* ... */ segments from a single line, shortest
// match first. A comment opened but not closed on the same line swallows
// the rest of the line.
func stripComments(line string) string {
	for {
		open := strings.Index(line, "/*")
		if open < 0 {
			return line
		}
		end := strings.Index(line[open+2:], "*/")
		if end < 0 {
			return line[:open]
		}
		line = line[:open] + line[open+2+end+2:]
	}
}
