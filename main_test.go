package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zygoat/CheckStrings/check"
	"github.com/zygoat/CheckStrings/lproj"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func resetFlags(t *testing.T) {
	t.Helper()
	oldBase, oldExclude, oldVerbose := flagBase, flagExclude, verbose
	t.Cleanup(func() { flagBase, flagExclude, verbose = oldBase, oldExclude, oldVerbose })
	flagBase, flagExclude, verbose = "", nil, false
	t.Setenv("CHECKSTRINGS_EXCLUDE", "")
}

func TestRunCheck_Consistent(t *testing.T) {
	resetFlags(t)
	root := t.TempDir()
	writeFixture(t, root, "Res/en.lproj/L.strings", "\"a\" = \"x\";\n")
	writeFixture(t, root, "Res/de.lproj/L.strings", "\"a\" = \"y\";\n")
	// Non-.strings files inside bundles are ignored.
	writeFixture(t, root, "Res/de.lproj/L.stringsdict", "not a table")

	stats, err := runCheck(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Outcome() != check.Good {
		t.Fatalf("Outcome() = %v, want Good", stats.Outcome())
	}
	if stats.Tables != 1 {
		t.Fatalf("Tables = %d, want 1", stats.Tables)
	}
}

func TestRunCheck_Exclusions(t *testing.T) {
	resetFlags(t)
	flagExclude = []string{"Pods"}

	root := t.TempDir()
	writeFixture(t, root, "Res/en.lproj/L.strings", "\"a\" = \"x\";\n")
	writeFixture(t, root, "Res/de.lproj/L.strings", "\"a\" = \"y\";\n")
	// Would introduce a discrepancy if it were not excluded.
	writeFixture(t, root, "Pods/en.lproj/P.strings", "\"only\" = \"here\";\n")

	stats, err := runCheck(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Tables != 1 {
		t.Fatalf("Tables = %d, want 1 (Pods excluded)", stats.Tables)
	}
}

func TestRunCheck_BaseOverride(t *testing.T) {
	resetFlags(t)
	flagBase = "de"

	root := t.TempDir()
	writeFixture(t, root, "Res/de.lproj/L.strings", "\"a\" = \"x\";\n")

	stats, err := runCheck(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Outcome() != check.Good {
		t.Fatalf("Outcome() = %v, want Good", stats.Outcome())
	}
}

func TestRunCheck_FatalErrors(t *testing.T) {
	resetFlags(t)

	t.Run("bad search root", func(t *testing.T) {
		if _, err := runCheck(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("want error for missing search root")
		}
	})

	t.Run("no base language", func(t *testing.T) {
		root := t.TempDir()
		writeFixture(t, root, "Res/de.lproj/L.strings", "\"a\" = \"x\";\n")

		_, err := runCheck(root)
		if !errors.Is(err, lproj.ErrNoBaseLanguage) {
			t.Errorf("err = %v, want ErrNoBaseLanguage", err)
		}
	})
}
