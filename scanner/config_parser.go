// scanner/config_parser.go
package scanner

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFragments collects keys and string values of a decoded JSON or TOML document.
// These decoders do not report positions, so each value is placed on the first line
// holding its text.
type configFragments struct {
	text      *sourceText
	fragments []Fragment
}

func (c *configFragments) add(content string, kind FragmentKind, node string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	var pos *Position
	if i := bytes.Index(c.text.src, []byte(content)); i >= 0 {
		pos = c.text.position(i)
	} else if first, _, _ := strings.Cut(content, "\n"); first != content {
		if i := bytes.Index(c.text.src, []byte(first)); i >= 0 {
			pos = c.text.position(i)
		}
	}
	c.fragments = append(c.fragments, Fragment{Content: content, Position: pos, Kind: kind, Node: node})
}

func (c *configFragments) walk(node any) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			c.add(key, FragmentIdentifier, "key")
			c.walk(v[key])
		}
	case []map[string]any:
		for _, item := range v {
			c.walk(item)
		}
	case []any:
		for _, item := range v {
			c.walk(item)
		}
	case string:
		c.add(v, FragmentConfigValue, "value")
	}
}

// ExtractJSON returns the keys and string values of a JSON document.
func ExtractJSON(src []byte) ([]Fragment, error) {
	var data any
	decoder := json.NewDecoder(bytes.NewReader(src))
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("unmarshalling JSON: %w", err)
	}
	c := &configFragments{text: newSourceText(src)}
	c.walk(data)
	return c.fragments, nil
}

// ExtractTOML returns the keys and string values of a TOML document.
func ExtractTOML(src []byte) ([]Fragment, error) {
	var data map[string]any
	if _, err := toml.Decode(string(src), &data); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	c := &configFragments{text: newSourceText(src)}
	c.walk(data)
	return c.fragments, nil
}

// ExtractYAML returns the keys and string scalars of a YAML document, positioned with
// the line and column yaml.v3 reports.
func ExtractYAML(src []byte) ([]Fragment, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	var fragments []Fragment
	add := func(n *yaml.Node, kind FragmentKind, node string) {
		if strings.TrimSpace(n.Value) == "" {
			return
		}
		fragments = append(fragments, Fragment{
			Content:  n.Value,
			Position: &Position{Line: n.Line, Column: n.Column},
			Kind:     kind,
			Node:     node,
		})
	}

	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				add(n.Content[i], FragmentIdentifier, "key")
				walk(n.Content[i+1])
			}
		case yaml.ScalarNode:
			if n.Tag == "!!str" || n.Tag == "" {
				add(n, FragmentConfigValue, "value")
			}
		}
	}
	walk(&root)
	return fragments, nil
}

// ExtractEnv returns the keys and values of a .env file.
func ExtractEnv(src []byte) ([]Fragment, error) {
	var fragments []Fragment
	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		fragments = append(fragments, Fragment{
			Content:  key,
			Position: &Position{Line: lineNumber, Column: strings.Index(raw, key) + 1},
			Kind:     FragmentIdentifier,
			Node:     "key",
		})

		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			if unquoted, err := strconv.Unquote(value); err == nil {
				value = unquoted
			} else {
				value = value[1 : len(value)-1]
			}
		}
		if value == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Content:  value,
			Position: &Position{Line: lineNumber, Column: 1, Synthesized: true},
			Kind:     FragmentConfigValue,
			Node:     "value",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}
	return fragments, nil
}
