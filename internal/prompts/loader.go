// Package prompts provides a loader for the generation and refinement prompt
// templates. Prompts are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache holds parsed prompt files keyed by filename.
var cache sync.Map // map[string]map[string]string

// Get retrieves a prompt by filename and key. The filename carries no path,
// only the embedded file's name (e.g. "generation.json").
func Get(filename, key string) (string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts required at initialization time; it panics when
// the prompt is missing.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders in a prompt template with values
// from data. Placeholders with no matching key are left as-is.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}

	oldnew := make([]string, 0, len(data)*2)
	for key, value := range data {
		oldnew = append(oldnew, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}

// List returns the prompt keys in a file, sorted.
func List(filename string) ([]string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops all parsed prompt files. Useful for testing.
func ClearCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func loadFile(filename string) (map[string]string, error) {
	if cached, ok := cache.Load(filename); ok {
		return cached.(map[string]string), nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cache.Store(filename, prompts)
	return prompts, nil
}
