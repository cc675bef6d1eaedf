// config/sample.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigExists is returned when init would overwrite an existing config file.
var ErrConfigExists = errors.New("config file already exists")

// SampleConfig is the commented configuration written by CreateDefaultConfig.
const SampleConfig = `# Languages to check
languages:
  - en
  #- en_GB

# Directories/Files/Regular expressions to exclude
exclude:
  - Pods
  - Package.swift

# Rules to apply
rules:
  - support_flat_case
  - support_one_line_comment
  - support_multi_line_comment
  #- support_british_words
  #- ignore_capitalization
  - ignore_language_keywords
  - ignore_commonly_used_words
  #- ignore_shortened_words
  #- ignore_lorem_ipsum
  #- ignore_html_tags
  - ignore_urls

# Words/Regular expressions to ignore
ignore:
  - iOS

# Extra word lists (one word per line, or hunspell .dic files)
#dictionaries:
#  - .spelling-words.txt
`

// CreateDefaultConfig writes SampleConfig to FileName inside dir.
func CreateDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
		return path, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(SampleConfig); err != nil {
		_ = f.Close()
		return path, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
