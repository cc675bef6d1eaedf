package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexferrari88/spell-scanner/config"
	"github.com/alexferrari88/spell-scanner/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeGitHubURL(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"https://github.com/alexferrari88/spell-scanner", true},
		{"https://github.com/alexferrari88/spell-scanner.git", true},
		{"git@github.com:alexferrari88/spell-scanner.git", true},
		{"https://github.com/alexferrari88/spell-scanner/blob/main/README.md", false},
		{"https://gitlab.com/group/project", false},
		{"./Sources", false},
		{"/tmp/project", false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeGitHubURL(tt.target))
		})
	}
}

func TestProjectDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.swift")
	require.NoError(t, os.WriteFile(file, []byte("let x = 1\n"), 0o644))
	assert.Equal(t, dir, projectDir(file))
	assert.Equal(t, dir, projectDir(dir))
}

func TestNewDictionaryResolvesWordListsNextToConfig(t *testing.T) {
	dictDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dictDir, "en.dic"), []byte("2\nhello\nworld\n"), 0o644))
	t.Setenv("SPELL_SCANNER_DICT_PATH", dictDir)

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "words.txt"), []byte("spellscanner\n"), 0o644))
	cfg, _ := config.Build(config.File{Dictionaries: []string{"words.txt"}})
	loaded := &config.Loaded{Config: cfg, Path: filepath.Join(projectDir, config.FileName)}

	dict, err := newDictionary(loaded, "/elsewhere", logging.Discard())
	require.NoError(t, err)

	lookup, err := dict.Check("spellscanner", "en")
	require.NoError(t, err)
	assert.False(t, lookup.Misspelled)

	lookup, err = dict.Check("wrld", "en")
	require.NoError(t, err)
	assert.True(t, lookup.Misspelled)
	assert.Contains(t, lookup.Suggestions, "world")
}

func TestScanOptionsFromFlags(t *testing.T) {
	noGitignore, scanConfigs, workers, severity = true, true, 3, "error"
	t.Cleanup(func() { noGitignore, scanConfigs, workers, severity = false, false, 0, "warning" })

	opts := scanOptions(true)
	assert.True(t, opts.Fix)
	assert.False(t, opts.UseGitignore)
	assert.True(t, opts.ScanConfigs)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, "error", opts.Severity)
}
