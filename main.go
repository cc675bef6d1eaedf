// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alexferrari88/spell-scanner/config"
	"github.com/alexferrari88/spell-scanner/logging"
	"github.com/alexferrari88/spell-scanner/scanner"
	"github.com/alexferrari88/spell-scanner/spelling"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	appName = "spell-scanner"
	version = "0.9.7"
)

var (
	configPath   string
	jsonOutput   bool
	onlyModified bool
	workers      int
	noGitignore  bool
	scanConfigs  bool
	severity     string
	verbosity    int
	quiet        bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " [path]",
	Short: "Spell checker for source code",
	Long: `spell-scanner checks the spelling of identifiers, string literals and comments in
Swift, Go, Python, JavaScript and TypeScript projects. Run without a subcommand it behaves
like "check".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args, false)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a configuration file (default: "+config.FileName+" in the project or home directory)")
	flags.BoolVar(&jsonOutput, "json", false, "Output results in JSON format.")
	flags.BoolVar(&onlyModified, "only-modified", false, "Only check files reported as added, modified or renamed by git.")
	flags.IntVar(&workers, "workers", 0, "Number of files checked in parallel (default: number of CPUs)")
	flags.BoolVar(&noGitignore, "no-gitignore", false, "Do not honour .gitignore files.")
	flags.BoolVar(&scanConfigs, "configs", false, "Also check YAML, JSON, TOML and .env files.")
	flags.StringVar(&severity, "severity", scanner.DefaultSeverity, "Severity printed in report lines (warning or error).")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug).")
	flags.BoolVar(&quiet, "quiet", false, "Suppress all logs.")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output.")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, scanner.ErrPathNotFound) {
			fmt.Fprintln(os.Stderr, "error: The given path does not exist.")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, verbosity, quiet)
}

func useColor() bool {
	if noColor || jsonOutput {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func looksLikeGitHubURL(target string) bool {
	if strings.HasPrefix(target, "git@github.com:") {
		return true
	}
	parsedURL, err := url.ParseRequestURI(target)
	if err != nil {
		return false
	}
	return (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") &&
		strings.HasSuffix(parsedURL.Host, "github.com") &&
		(strings.HasSuffix(parsedURL.Path, ".git") || !strings.Contains(parsedURL.Path, "."))
}

// projectDir is the directory searched for the configuration file of target.
func projectDir(target string) string {
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		return filepath.Dir(target)
	}
	return target
}

// loadConfig loads the configuration for target and prints its warnings.
func loadConfig(target string) (*config.Loaded, error) {
	loaded, err := config.Load(projectDir(target), configPath)
	if err != nil {
		return nil, err
	}
	for _, w := range loaded.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return loaded, nil
}

// newDictionary builds the cached dictionary, resolving relative word-list paths against
// the directory of the configuration file.
func newDictionary(loaded *config.Loaded, baseDir string, logger *slog.Logger) (spelling.Dictionary, error) {
	if loaded.Path != "" {
		baseDir = filepath.Dir(loaded.Path)
	}
	files := make([]string, 0, len(loaded.Config.Dictionaries))
	for _, p := range loaded.Config.Dictionaries {
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		files = append(files, p)
	}
	dict := spelling.NewFuzzyDictionary(spelling.WithWordFiles(files...), spelling.WithLogger(logger))
	cached, err := spelling.NewCachedDictionary(dict, spelling.DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating dictionary cache: %w", err)
	}
	return cached, nil
}

func scanOptions(fix bool) scanner.Options {
	return scanner.Options{
		Fix:          fix,
		OnlyModified: onlyModified,
		Workers:      workers,
		UseGitignore: !noGitignore,
		ScanConfigs:  scanConfigs,
		Severity:     severity,
	}
}

// outputs pairs the reporter handed to the session with how the run is closed.
type outputs struct {
	reporter scanner.Reporter
	finish   func(result *scanner.CheckResult, fix bool) error
}

func newOutputs(displayRoot string) outputs {
	if jsonOutput {
		r := scanner.NewJSONReporter(os.Stdout)
		r.Root = displayRoot
		return outputs{reporter: r, finish: func(result *scanner.CheckResult, _ bool) error { return r.Flush(result) }}
	}
	r := scanner.NewTextReporter(os.Stdout, useColor())
	r.Root = displayRoot
	return outputs{reporter: r, finish: func(result *scanner.CheckResult, fix bool) error {
		fmt.Println(scanner.Summary(result, fix))
		return nil
	}}
}
