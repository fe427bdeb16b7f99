package urlfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a URL list, one URL per line. Blank lines and lines whose
// first non-space character is '#' are skipped; surrounding whitespace is
// trimmed. Duplicates are kept, order is preserved.
func Parse(r io.Reader) ([]string, error) {
	var urls []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading URL list: %w", err)
	}

	return urls, nil
}

// ParseFile reads a URL list from the file at path.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening URL list %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
