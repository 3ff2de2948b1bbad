// Package config — .checkstrings.yaml project file support.
//
// When a .checkstrings.yaml file exists in the search root, its settings
// become the defaults for the run; command-line flags still override them.
// The CHECKSTRINGS_EXCLUDE environment variable supplies additional
// exclusion paths, colon-separated, merged after the file's own list.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the search root.
const FileName = ".checkstrings.yaml"

// ExcludeEnv names the environment variable carrying default exclusions.
const ExcludeEnv = "CHECKSTRINGS_EXCLUDE"

// DefaultBase is the base language assumed when nothing else is configured.
const DefaultBase = "en"

// Config holds the settings of one run.
type Config struct {
	// Base is the reference language code (default "en").
	Base string `yaml:"base_lang,omitempty"`
	// Exclude lists root-relative sub-paths skipped during traversal.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Load reads .checkstrings.yaml from root if present and merges environment
// defaults. A missing file is not an error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := &Config{Base: DefaultBase}

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No project file; environment and defaults apply.
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if cfg.Base == "" {
			cfg.Base = DefaultBase
		}
	}

	cfg.Exclude = append(cfg.Exclude, envExcludes()...)
	return cfg, nil
}

// envExcludes parses CHECKSTRINGS_EXCLUDE as a colon-separated path list.
func envExcludes() []string {
	raw := os.Getenv(ExcludeEnv)
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ":") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
