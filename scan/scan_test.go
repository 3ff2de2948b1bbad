package scan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Res/en.lproj/L.strings")
	touch(t, root, "Res/de.lproj/L.strings")
	touch(t, root, "Pods/en.lproj/L.strings")
	touch(t, root, "PodsExtra/en.lproj/L.strings")
	touch(t, root, ".git/config")
	touch(t, root, "notes.txt")

	paths, err := Walk(root, []string{"Pods"})
	if err != nil {
		t.Fatal(err)
	}

	got := relAll(t, root, paths)
	want := []string{
		"PodsExtra/en.lproj/L.strings",
		"Res/de.lproj/L.strings",
		"Res/en.lproj/L.strings",
		"notes.txt",
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("paths not sorted: %v", got)
	}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk() = %v, want %v", got, want)
		}
	}
}

func TestWalk_ExcludesNestedPrefix(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/b/en.lproj/L.strings")
	touch(t, root, "a/keep/en.lproj/L.strings")

	paths, err := Walk(root, []string{"a/b/"})
	if err != nil {
		t.Fatal(err)
	}
	got := relAll(t, root, paths)
	if len(got) != 1 || got[0] != "a/keep/en.lproj/L.strings" {
		t.Fatalf("Walk() = %v, want only a/keep/...", got)
	}
}

func TestWalk_BadRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("missing root must be an error")
	}

	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Walk(file, nil); err == nil {
		t.Error("non-directory root must be an error")
	}
}
