// spelling/hunspell.go
package spelling

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/client9/gospell"
)

// LoadHunspell expands a hunspell dictionary into the list of words it accepts, applying
// the prefix and suffix rules of its affix file.
func LoadHunspell(dicPath, affPath string) ([]string, error) {
	speller, err := gospell.NewGoSpell(affPath, dicPath)
	if err != nil {
		return nil, fmt.Errorf("loading hunspell dictionary %s: %w", dicPath, err)
	}
	words := make([]string, 0, len(speller.Dict))
	for w := range speller.Dict {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}

// LoadWordList reads a plain list with one word per line. Hunspell-style "word/FLAGS"
// entries are accepted and their flags dropped.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, _, _ := strings.Cut(line, "/")
		if _, err := strconv.Atoi(word); err == nil {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return words, nil
}
