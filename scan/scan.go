// Package scan walks a search root and yields candidate file paths for the
// reconciliation engine. It knows nothing about localization: exclusion
// filtering and traversal live here, recognition lives in package lproj.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// vcsDirs are always skipped regardless of configured exclusions.
var vcsDirs = map[string]bool{".git": true, ".hg": true, ".svn": true}

// Walk returns every regular file under root, sorted, with excluded
// subtrees removed. Exclusions are root-relative, slash-separated path
// prefixes matched on whole segments ("Pods" excludes Pods/ but not
// PodsExtra/). An unusable root is a fatal setup error.
func Walk(root string, excludes []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root %s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if vcsDirs[d.Name()] || excluded(rel, excludes) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && !excluded(rel, excludes) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// excluded reports whether rel falls under any of the exclusion prefixes.
func excluded(rel string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.Trim(filepath.ToSlash(ex), "/")
		if ex == "" {
			continue
		}
		if rel == ex || strings.HasPrefix(rel, ex+"/") {
			return true
		}
	}
	return false
}
