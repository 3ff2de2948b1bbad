// Package langmeta maps language-directory codes to English display names
// for diagnostic output. Codes come straight from .lproj directory names,
// so both "pt-BR" and legacy "pt_BR" spellings must resolve.
package langmeta

import "strings"

// registry holds canonical names; locale variants fall back to the base
// language in Name().
var registry = map[string]string{
	"ar":      "Arabic",
	"ca":      "Catalan",
	"cs":      "Czech",
	"da":      "Danish",
	"de":      "German",
	"el":      "Greek",
	"en":      "English",
	"en-AU":   "English (Australia)",
	"en-GB":   "English (UK)",
	"es":      "Spanish",
	"fi":      "Finnish",
	"fr":      "French",
	"he":      "Hebrew",
	"hi":      "Hindi",
	"hr":      "Croatian",
	"hu":      "Hungarian",
	"id":      "Indonesian",
	"it":      "Italian",
	"ja":      "Japanese",
	"ko":      "Korean",
	"ms":      "Malay",
	"nb":      "Norwegian Bokmål",
	"nl":      "Dutch",
	"pl":      "Polish",
	"pt":      "Portuguese",
	"pt-BR":   "Portuguese (Brazil)",
	"pt-PT":   "Portuguese (Portugal)",
	"ro":      "Romanian",
	"ru":      "Russian",
	"sk":      "Slovak",
	"sv":      "Swedish",
	"th":      "Thai",
	"tr":      "Turkish",
	"uk":      "Ukrainian",
	"vi":      "Vietnamese",
	"zh":      "Chinese",
	"zh-Hans": "Chinese (Simplified)",
	"zh-Hant": "Chinese (Traditional)",
	// Legacy bundle directory names still found in older projects.
	"English": "English",
	"French":  "French",
	"German":  "German",
}

// canonicalize normalizes separator and case: "pt_br" -> "pt-BR".
// Script subtags ("hans") keep title case so zh-Hans resolves.
func canonicalize(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}
	parts := strings.Split(code, "-")
	parts[0] = strings.ToLower(parts[0])
	for i := 1; i < len(parts); i++ {
		switch len(parts[i]) {
		case 4:
			parts[i] = strings.ToUpper(parts[i][:1]) + strings.ToLower(parts[i][1:])
		default:
			parts[i] = strings.ToUpper(parts[i])
		}
	}
	return strings.Join(parts, "-")
}

// Name returns the display name for a language code, falling back from a
// locale variant to its base language. Unknown codes yield "".
func Name(code string) string {
	if n, ok := registry[code]; ok {
		return n
	}
	canon := canonicalize(code)
	if n, ok := registry[canon]; ok {
		return n
	}
	if base, _, ok := strings.Cut(canon, "-"); ok {
		if n, found := registry[base]; found {
			return n
		}
	}
	return ""
}

// Describe renders a code for humans: `de (German)`, or just the code when
// the language is unknown.
func Describe(code string) string {
	if n := Name(code); n != "" {
		return code + " (" + n + ")"
	}
	return code
}
