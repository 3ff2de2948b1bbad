// Package i18n localizes CheckStrings' own user-facing messages.
//
// It wraps gotext behind T() (simple translation) and N() (plural-aware
// translation). The report wording leans on N() for its singular/plural
// variants, so even an untranslated run goes through here. Translations are
// embedded in the binary and loaded once via Init().
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the compiled translation catalogs, laid out as
// locales/{lang}/LC_MESSAGES/checkstrings.po.
//
//go:embed all:locales
var locales embed.FS

const domain = "checkstrings"

var locale *gotext.Locale

// Init loads the catalog for lang, auto-detecting from the environment
// (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in GNU gettext order) when lang is
// empty. Call once at startup; T and N fall back to passthrough before
// that.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates msgid, returning it unchanged when no translation exists.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// N translates with plural forms, selecting by n.
func N(singular, plural string, n int) string {
	if locale == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return locale.GetN(singular, plural, n)
}

func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE may be a colon-separated preference list.
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// Strip the encoding suffix ("de_DE.UTF-8" -> "de_DE").
		val, _, _ = strings.Cut(val, ".")
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}
