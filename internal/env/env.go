// Package env loads KEY=VALUE pairs from a .env file so that the settings
// file can reference endpoints with ${VAR} without committing API keys.
package env

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultFile is the .env file read from the working directory.
const DefaultFile = ".env"

// Load reads path and sets every variable that is not already present in the
// process environment. A missing file is not an error.
//
// File format:
//   - KEY=VALUE, one per line, split on the first "="
//   - blank lines and lines starting with # are skipped
//   - an optional "export " prefix is ignored
//   - single or double quotes around the value are stripped
//
// Load returns the number of variables it set.
func Load(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	set := 0
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return set, fmt.Errorf("%s:%d: expected KEY=VALUE", path, lineNo)
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		set++
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}
