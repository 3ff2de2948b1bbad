package i18n

import "testing"

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(env, "")
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Run("LANGUAGE wins and its list is trimmed", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "ru_RU.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")

		if got := detectLanguage(); got != "ru_RU" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "ru_RU")
		}
	})

	t.Run("C and POSIX locales are skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LC_ALL", "C")
		t.Setenv("LANG", "fr_FR.UTF-8")

		if got := detectLanguage(); got != "fr_FR" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "fr_FR")
		}
	})

	t.Run("defaults to en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "en")
		}
	})
}

func TestPassthroughBeforeInit(t *testing.T) {
	old := locale
	locale = nil
	t.Cleanup(func() { locale = old })

	if got := T("consistent:"); got != "consistent:" {
		t.Errorf("T() = %q, want passthrough", got)
	}
	if got := N("%d file", "%d files", 1); got != "%d file" {
		t.Errorf("N(1) = %q, want singular", got)
	}
	if got := N("%d file", "%d files", 3); got != "%d files" {
		t.Errorf("N(3) = %q, want plural", got)
	}
}

func TestInitLoadsEmbeddedCatalog(t *testing.T) {
	old := locale
	t.Cleanup(func() { locale = old })

	Init("ru")
	if got := T("Everything looks good."); got != "Всё в порядке." {
		t.Errorf("ru T() = %q", got)
	}

	// Unknown languages fall back to passthrough, not an error.
	Init("xx")
	if got := T("Everything looks good."); got != "Everything looks good." {
		t.Errorf("xx T() = %q, want passthrough", got)
	}
}
