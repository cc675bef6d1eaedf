// scanner/discover.go
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// directories that never hold first-party sources
var skippedDirNames = map[string]bool{
	".git": true, "node_modules": true, "vendor": true, "Pods": true, "Carthage": true,
	"DerivedData": true, "dist": true, "build": true, "target": true, "tmp": true, "temp": true,
	"__pycache__": true, ".venv": true, "venv": true, "env": true, ".build": true,
	".next": true, ".nuxt": true, ".svelte-kit": true,
}

var configExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// isSupported reports whether the file at path has an extractor for the session options.
func (s *Session) isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := extractorByExt[ext]; ok {
		return true
	}
	if !s.opts.ScanConfigs {
		return false
	}
	return slices.Contains(configExtensions, ext) || strings.HasPrefix(filepath.Base(path), ".env")
}

// isExcluded applies the configuration excludes: directories by path suffix, files by
// base name, patterns against the whole path.
func (s *Session) isExcluded(path string, isDir bool) bool {
	for _, re := range s.cfg.ExcludedPatterns {
		if re.MatchString(path) {
			return true
		}
	}
	if isDir {
		clean := filepath.ToSlash(filepath.Clean(path))
		for _, dir := range s.cfg.ExcludedDirectories {
			dir = filepath.ToSlash(dir)
			if clean == dir || strings.HasSuffix(clean, "/"+dir) {
				return true
			}
		}
		return false
	}
	return slices.Contains(s.cfg.ExcludedFiles, filepath.Base(path))
}

// inExcludedDir checks every parent directory of a file; used for paths that did not
// come from a directory walk.
func (s *Session) inExcludedDir(path string) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if s.isExcluded(dir, true) || skippedDirNames[filepath.Base(dir)] {
			return true
		}
		if parent := filepath.Dir(dir); parent == dir {
			return false
		}
	}
}

// isIgnored checks if a given path should be ignored based on .gitignore files.
// It traverses up from the path's directory to the rootDir, matching the path relative
// to each .gitignore it finds.
func (s *Session) isIgnored(absPath string, isDir bool, absRootDir string) bool {
	if !s.opts.UseGitignore {
		return false
	}
	for currentSearchDir := filepath.Dir(absPath); strings.HasPrefix(currentSearchDir, absRootDir); {
		if rel, err := filepath.Rel(currentSearchDir, absPath); err == nil {
			rel = filepath.ToSlash(rel)
			if isDir {
				rel += "/"
			}
			if s.gitignoreFor(currentSearchDir).MatchesPath(rel) {
				return true
			}
		}
		if currentSearchDir == absRootDir {
			break
		}
		parentDir := filepath.Dir(currentSearchDir)
		if parentDir == currentSearchDir {
			break
		}
		currentSearchDir = parentDir
	}
	return false
}

func (s *Session) gitignoreFor(dir string) gitignore.IgnoreParser {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	if ignorer, ok := s.gitIgnoreCache[dir]; ok {
		return ignorer
	}
	path := filepath.Join(dir, ".gitignore")
	ignorer, err := gitignore.CompileIgnoreFile(path)
	if err != nil || ignorer == nil {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("skipping unreadable .gitignore", "path", path, "error", err)
		}
		ignorer = gitignore.CompileIgnoreLines()
	}
	s.gitIgnoreCache[dir] = ignorer
	return ignorer
}

// Discover lists the files under root that will be checked. A file root is returned
// as is when its type is supported.
func (s *Session) Discover(ctx context.Context, root string) ([]string, error) {
	absRootDir, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(absRootDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrPathNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		if s.isSupported(absRootDir) {
			return []string{absRootDir}, nil
		}
		return nil, nil
	}

	var files []string
	walkErr := filepath.WalkDir(absRootDir, func(path string, d os.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.Warn("error accessing path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == absRootDir {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if skippedDirNames[name] || (strings.HasPrefix(name, ".") && len(name) > 1) {
				s.logger.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			if s.isExcluded(path, true) || s.isIgnored(path, true, absRootDir) {
				s.logger.Debug("skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") && !(s.opts.ScanConfigs && strings.HasPrefix(name, ".env")) {
			return nil
		}
		if !s.isSupported(path) || s.isExcluded(path, false) {
			return nil
		}
		if s.isIgnored(path, false, absRootDir) {
			s.logger.Debug("skipping path due to .gitignore", "path", path)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return files, fmt.Errorf("error walking directory %s: %w", root, walkErr)
	}
	return files, nil
}

// modifiedUnder keeps the git-modified files that lie under root and would be discovered.
func (s *Session) modifiedUnder(ctx context.Context, root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	dir := absRoot
	if info, err := os.Stat(absRoot); err == nil && !info.IsDir() {
		dir = filepath.Dir(absRoot)
	}
	modified, err := ModifiedFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, path := range modified {
		rel, err := filepath.Rel(absRoot, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if !s.isSupported(path) || s.isExcluded(path, false) || s.inExcludedDir(path) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
