// scanner/scanner.go
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alexferrari88/spell-scanner/config"
	"github.com/alexferrari88/spell-scanner/spelling"
	"github.com/alexferrari88/spell-scanner/tokenizer"
	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// DefaultSeverity is printed in report lines when Options.Severity is empty.
const DefaultSeverity = "warning"

type extractFunc func(ctx context.Context, path string, src []byte) ([]Fragment, error)

func treeSitter(langName string) extractFunc {
	return func(ctx context.Context, _ string, src []byte) ([]Fragment, error) {
		return ExtractTreeSitter(ctx, langName, src)
	}
}

var extractorByExt = map[string]extractFunc{
	".swift": func(ctx context.Context, _ string, src []byte) ([]Fragment, error) {
		return ExtractSwift(ctx, src)
	},
	".go": func(_ context.Context, path string, src []byte) ([]Fragment, error) {
		return ExtractGo(path, src)
	},
	".py":  treeSitter("python"),
	".js":  treeSitter("javascript"),
	".jsx": treeSitter("javascript"),
	".ts":  treeSitter("typescript"),
	".tsx": treeSitter("tsx"),
}

func configExtractor(path string) (extractFunc, bool) {
	wrap := func(fn func([]byte) ([]Fragment, error)) extractFunc {
		return func(_ context.Context, _ string, src []byte) ([]Fragment, error) { return fn(src) }
	}
	if strings.HasPrefix(filepath.Base(path), ".env") {
		return wrap(ExtractEnv), true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return wrap(ExtractJSON), true
	case ".yaml", ".yml":
		return wrap(ExtractYAML), true
	case ".toml":
		return wrap(ExtractTOML), true
	}
	return nil, false
}

// Session checks files against one configuration and dictionary. It is safe for
// concurrent use; files are checked in parallel by CheckFiles.
type Session struct {
	cfg      *config.Configuration
	checker  *spelling.Checker
	ignore   *spelling.IgnoreSet
	reporter Reporter
	opts     Options
	logger   *slog.Logger

	gitIgnoreCache map[string]gitignore.IgnoreParser // Key: absolute path to directory containing .gitignore
	cacheMutex     sync.Mutex
}

// New creates a Session. A nil cfg uses config.Default(), a nil reporter discards findings
// and a nil logger uses slog.Default().
func New(cfg *config.Configuration, dict spelling.Dictionary, reporter Reporter, opts Options, logger *slog.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if reporter == nil {
		reporter = discardReporter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Severity == "" {
		opts.Severity = DefaultSeverity
	}
	return &Session{
		cfg:            cfg,
		checker:        spelling.NewChecker(dict, cfg.Languages, logger),
		ignore:         spelling.NewIgnoreSet(cfg.IgnoredWords, cfg.IgnoredWordPatterns),
		reporter:       reporter,
		opts:           opts,
		logger:         logger,
		gitIgnoreCache: make(map[string]gitignore.IgnoreParser),
	}
}

// Options returns the options the session runs with, defaults applied.
func (s *Session) Options() Options { return s.opts }

// Check discovers the files under path and checks them. A path that does not exist
// returns ErrPathNotFound.
func (s *Session) Check(ctx context.Context, path string) (*CheckResult, error) {
	start := time.Now()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrPathNotFound
		}
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}

	var files []string
	var err error
	if s.opts.OnlyModified {
		files, err = s.modifiedUnder(ctx, path)
	} else {
		files, err = s.Discover(ctx, path)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("checking files", "path", path, "files", len(files))

	result, err := s.CheckFiles(ctx, files)
	if result != nil {
		result.Elapsed = time.Since(start)
	}
	return result, err
}

// CheckAsync runs Check in its own goroutine and calls done exactly once with the outcome.
func (s *Session) CheckAsync(ctx context.Context, path string, done func(*CheckResult, error)) {
	go func() {
		var (
			result *CheckResult
			err    error
		)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("check panicked: %v", r)
				result = nil
			}
			done(result, err)
		}()
		result, err = s.Check(ctx, path)
	}()
}

type fileResult struct {
	findings  []Finding
	corrected int
	err       error
}

// CheckFiles checks the given files with a bounded pool of workers. Per-file failures are
// logged and counted in FilesFailed; only cancellation of ctx stops the run early.
// Findings are reported and accumulated in the order of files.
func (s *Session) CheckFiles(ctx context.Context, files []string) (*CheckResult, error) {
	start := time.Now()
	results := make([]fileResult, len(files))
	indexes := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indexes)
		for i := range files {
			select {
			case indexes <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for range min(s.opts.Workers, max(len(files), 1)) {
		g.Go(func() error {
			for i := range indexes {
				if err := gctx.Err(); err != nil {
					return err
				}
				s.logger.Info("checking file", "path", files[i], "index", i+1, "total", len(files))
				findings, corrected, err := s.checkFile(gctx, files[i])
				results[i] = fileResult{findings: findings, corrected: corrected, err: err}
			}
			return nil
		})
	}
	waitErr := g.Wait()

	result := &CheckResult{AllMisspelledWords: []string{}, Findings: []Finding{}}
	for i, r := range results {
		if r.err != nil {
			s.logger.Warn("failed to check file", "path", files[i], "error", r.err)
			result.FilesFailed++
			continue
		}
		result.FilesChecked++
		result.CorrectedCount += r.corrected
		for _, f := range r.findings {
			if !f.Corrected {
				result.MisspelledCount++
				result.AllMisspelledWords = append(result.AllMisspelledWords, f.Word)
			}
		}
		result.Findings = append(result.Findings, r.findings...)
		s.reporter.ReportFile(files[i], r.findings)
	}
	result.Elapsed = time.Since(start)
	if waitErr != nil {
		return result, waitErr
	}
	return result, nil
}

func (s *Session) extractorFor(path string) (extractFunc, bool) {
	if extract, ok := extractorByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return extract, true
	}
	if s.opts.ScanConfigs {
		return configExtractor(path)
	}
	return nil, false
}

// checkFile runs the whole pipeline on one file: extraction, comments, tokenizing,
// ignore rules, dictionary lookups, decisions and, in fix mode, rewriting.
func (s *Session) checkFile(ctx context.Context, path string) ([]Finding, int, error) {
	extract, ok := s.extractorFor(path)
	if !ok {
		return nil, 0, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &FileError{Path: path, Op: "read", Err: err}
	}
	if len(src) == 0 {
		return nil, 0, nil
	}

	fragments, err := extract(ctx, path, src)
	if err != nil {
		return nil, 0, &FileError{Path: path, Op: "parse", Err: err}
	}

	text := newSourceText(src)
	ignore := s.ignore
	if syntax, ok := commentSyntaxByExt[strings.ToLower(filepath.Ext(path))]; ok {
		scan := extractComments(text, syntax,
			s.cfg.Has(config.RuleSupportOneLineComment),
			s.cfg.Has(config.RuleSupportMultiLineComment))
		fragments = append(fragments, scan.fragments...)
		ignore = ignore.With(scan.authors...)
	}
	s.logger.Debug("extracted fragments", "path", path, "fragments", len(fragments))

	policy := spelling.Policy{
		Fix:                  s.opts.Fix,
		IgnoreCapitalization: s.cfg.Has(config.RuleIgnoreCapitalization),
		SupportFlatCase:      s.cfg.Has(config.RuleSupportFlatCase),
	}
	ignoreURLs := s.cfg.Has(config.RuleIgnoreURLs)

	var findings []Finding
	corrected := 0
	fixed := make(map[string]bool)
	for _, f := range fragments {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		content, ok := prepareFragment(f, ignoreURLs)
		if !ok {
			continue
		}
		loc := text.locator(f)
		for _, c := range tokenizer.Tokenize(content) {
			line, column := loc.locate(c)
			if ignore.ShouldIgnore(c.Text) {
				continue
			}
			d := spelling.Decide(c.Text, s.checker.Check(c.Text), policy)
			if !d.Reported() {
				continue
			}
			finding := Finding{
				Path:        path,
				Line:        line,
				Column:      column,
				Word:        d.Word,
				Suggestions: d.Suggestions,
				Kind:        f.Kind.String(),
				Severity:    s.opts.Severity,
			}
			if d.Class == spelling.MisspelledCorrectable && s.correct(path, d, fixed) {
				finding.Corrected = true
				finding.Correction = d.Correction
				corrected++
			}
			findings = append(findings, finding)
		}
	}
	return findings, corrected, nil
}

// correct rewrites the file for a correctable decision. A word already rewritten in this
// file counts as corrected again since every occurrence was replaced at once.
func (s *Session) correct(path string, d spelling.Decision, fixed map[string]bool) bool {
	if fixed[d.Word] {
		return true
	}
	n, err := fixFile(path, d.Word, d.Correction)
	if err != nil {
		s.logger.Warn("failed to correct word", "path", path, "word", d.Word, "error", err)
		return false
	}
	if n == 0 {
		return false
	}
	s.logger.Info("corrected word", "path", path, "word", d.Word, "correction", d.Correction, "occurrences", n)
	fixed[d.Word] = true
	return true
}

// SupportedLanguages lists the languages the dictionary can check.
func SupportedLanguages(dict spelling.Dictionary) []string {
	return dict.Languages()
}

// SupportedRules lists the rule names accepted in a configuration file.
func SupportedRules() []string {
	return config.RuleNames()
}
