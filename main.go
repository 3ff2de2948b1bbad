// CheckStrings — build-time consistency checker for .strings localization
// tables: every key of the base language must exist in every other
// language, and no language may carry keys the base language lacks.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zygoat/CheckStrings/check"
	"github.com/zygoat/CheckStrings/config"
	"github.com/zygoat/CheckStrings/i18n"
	"github.com/zygoat/CheckStrings/langmeta"
	"github.com/zygoat/CheckStrings/lproj"
	"github.com/zygoat/CheckStrings/scan"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// Exit codes are part of the contract with build systems calling this tool:
// discrepancies must be distinguishable from a setup failure.
const (
	exitOK            = 0 // all files present, all tables consistent
	exitFatal         = 1 // setup error: bad search root, no base language
	exitDiscrepancies = 2 // missing or unused strings found
)

// ---------------------------------------------------------------------------
// Flags
// ---------------------------------------------------------------------------

var (
	flagBase    string
	flagExclude []string
	verbose     bool
)

// exitCode is resolved by the root command and consumed by main.
var exitCode = exitOK

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "checkstrings [path]",
		Short: "Check .strings tables for cross-language consistency",
		Long: `CheckStrings validates that localized .strings tables stay consistent:
every key of the base language must exist in every other discovered
language, and no language may carry keys the base language lacks.

Tables are discovered under the given path (default ".") by the
<anything>/<lang>.lproj/<file>.strings convention. Settings can also come
from a .checkstrings.yaml file in the search root and from the
CHECKSTRINGS_EXCLUDE environment variable (colon-separated paths).

Exit codes:
  0   everything consistent
  1   setup error (bad search root, base language never found)
  2   missing or unused strings`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			searchRoot := "."
			if len(args) == 1 {
				searchRoot = args[0]
			}
			stats, err := runCheck(searchRoot)
			if err != nil {
				return err
			}
			if stats.Outcome() != check.Good {
				exitCode = exitDiscrepancies
			}
			return nil
		},
	}

	root.Flags().StringVarP(&flagBase, "base", "b", "", "Base language code (overrides config, default \"en\")")
	root.Flags().StringArrayVarP(&flagExclude, "exclude", "x", nil, "Sub-path to skip (repeatable)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log discovery and encoding details")

	root.AddCommand(newVersionCmd())

	return root
}

func runCheck(searchRoot string) (check.Stats, error) {
	cfg, err := config.Load(searchRoot)
	if err != nil {
		return check.Stats{}, err
	}
	if flagBase != "" {
		cfg.Base = flagBase
	}
	cfg.Exclude = append(cfg.Exclude, flagExclude...)

	if verbose {
		logInfo("search root: %s", searchRoot)
		if len(cfg.Exclude) > 0 {
			logInfo("excluding: %s", strings.Join(cfg.Exclude, ", "))
		}
		logInfo("base language: %s", langmeta.Describe(cfg.Base))
	}

	paths, err := scan.Walk(searchRoot, cfg.Exclude)
	if err != nil {
		return check.Stats{}, err
	}

	reg := lproj.NewRegistry()
	for _, p := range paths {
		// Bundle directories hold more than tables (nibs, stringsdicts);
		// only flat .strings files are in scope.
		if !strings.HasSuffix(p, ".strings") {
			continue
		}
		loc, ok := lproj.Split(p)
		if !ok {
			continue
		}
		if verbose {
			logInfo("found %s [%s]", loc.Table.ID(), langmeta.Describe(loc.Language))
		}
		reg.Add(loc)
	}

	opts := check.Options{
		Base:  cfg.Base,
		Out:   os.Stdout,
		Warnf: logWarning,
	}
	if verbose {
		opts.Infof = logInfo
	}

	return check.Run(reg, opts)
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("checkstrings version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(exitFatal)
	}
	os.Exit(exitCode)
}
