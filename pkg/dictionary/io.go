package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadWordListFile reads a newline-delimited UTF-8 word list. Blank lines and
// lines starting with '#' are ignored; surrounding whitespace is trimmed.
func LoadWordListFile(path string, caseSensitive bool) (*WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s", len(words), path)
	if caseSensitive {
		return NewCaseSensitiveWordList(words...), nil
	}
	return NewWordList(words...), nil
}

// SaveWordListFile writes the list one word per line, sorted case-invariantly.
func SaveWordListFile(wl *WordList, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range wl.Values() {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}

// LoadFixFile reads a fix list of newline-delimited key=value pairs, split on
// the first '='. One misspelling may map to several corrections, one pair per
// line. Malformed lines are skipped with a warning.
func LoadFixFile(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fix list %s: %w", path, err)
	}
	defer file.Close()

	fixes := make(map[string][]string)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" || value == "" {
			log.Warnf("Skipping malformed fix entry at %s:%d", path, lineNo)
			continue
		}
		fixes[key] = append(fixes[key], value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fix list %s: %w", path, err)
	}
	return fixes, nil
}

// SaveFixFile writes key=value pairs sorted by key then value.
func SaveFixFile(fixes map[string][]string, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fix list %s: %w", path, err)
	}
	defer file.Close()

	keys := make([]string, 0, len(fixes))
	for k := range fixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(file)
	for _, k := range keys {
		values := append([]string(nil), fixes[k]...)
		sort.Strings(values)
		for _, v := range values {
			fmt.Fprintf(w, "%s=%s\n", k, v)
		}
	}
	return w.Flush()
}
