package stopwords

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/durak-nlp/durak/turkish"
)

// normalize trims token and, unless caseSensitive, lowercases it with
// Turkish casing rules. Every word entering a stopword or keep-word set
// passes through here.
func normalize(token string, caseSensitive bool) string {
	trimmed := strings.TrimSpace(token)
	if caseSensitive {
		return trimmed
	}
	return turkish.Lower(trimmed)
}

// scanWords reads newline-delimited words from r, skipping blank lines and
// lines starting with '#', normalizing each surviving line per the flag.
func scanWords(r io.Reader, caseSensitive bool) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, normalize(line, caseSensitive))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readWordFile(fsys fs.FS, name string, caseSensitive bool) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file %q: %w", name, err)
	}
	defer f.Close()
	words, err := scanWords(f, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file %q: %w", name, err)
	}
	return words, nil
}

// LoadWords loads a newline-delimited word file from the OS filesystem.
// Lines that are blank after trimming or start with '#' are skipped; the
// rest are normalized per caseSensitive.
func LoadWords(path string, caseSensitive bool) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to open word file %q: %w", path, err)
	}
	defer f.Close()
	words, err := scanWords(f, caseSensitive)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read word file %q: %w", path, err)
	}
	return NewSet(words...), nil
}
