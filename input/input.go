// Package input reads door codes, one per line, and rejects malformed ones
// before they reach the solver.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrMalformedCode indicates a line that is not digits followed by 'A'.
var ErrMalformedCode = errors.New("input: malformed code")

// ErrNoCodes indicates the input held no codes at all.
var ErrNoCodes = errors.New("input: no codes")

var codeRx = regexp.MustCompile(`^[0-9]+A$`)

// Valid reports whether code has the shape digits + 'A'.
func Valid(code string) bool { return codeRx.MatchString(code) }

// Parse returns the codes in r. Surrounding whitespace is trimmed and blank
// lines are skipped; any other line must match ^[0-9]+A$.
func Parse(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !Valid(text) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCode, line, text)
		}
		codes = append(codes, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}
	return codes, nil
}

// ReadFile parses the codes in the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
