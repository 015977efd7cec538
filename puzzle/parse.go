package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Trimmed returns raw without surrounding whitespace.
func Trimmed(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrParse)
	}

	return s, nil
}

// Lines splits raw into lines, dropping trailing blank lines and any "\r".
func Lines(raw string) ([]string, error) {
	raw = strings.TrimRight(strings.ReplaceAll(raw, "\r\n", "\n"), "\n \t")
	if raw == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	return strings.Split(raw, "\n"), nil
}

// CommaSeparated splits a single-line list on commas, trimming each item.
func CommaSeparated(raw string) ([]string, error) {
	s, err := Trimmed(raw)
	if err != nil {
		return nil, err
	}
	items := strings.Split(s, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return items, nil
}

// Integer parses raw, trimmed, as a single base-10 integer.
func Integer[T constraints.Integer](raw string) (T, error) {
	s, err := Trimmed(raw)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return T(v), nil
}

// Ints extracts every decimal integer in s, in order. A '-' is a sign only
// when it does not follow a digit, so "5-8" yields 5 and 8. Numbers that do
// not fit T are skipped; callers that expect a fixed count see a short slice.
func Ints[T constraints.Integer](s string) []T {
	var out []T
	for i := 0; i < len(s); {
		j := i
		if s[j] == '-' && j+1 < len(s) && isDigit(s[j+1]) && (i == 0 || !isDigit(s[i-1])) {
			j++
		}
		if !isDigit(s[j]) {
			i++
			continue
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		v, err := strconv.ParseInt(s[i:k], 10, 64)
		i = k
		if err != nil || int64(T(v)) != v || (v < 0) != (T(v) < 0) {
			continue
		}
		out = append(out, T(v))
	}

	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Rows splits raw into lines of runes, the usual shape of grid inputs.
func Rows(raw string) ([][]rune, error) {
	lines, err := Lines(raw)
	if err != nil {
		return nil, err
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}

	return rows, nil
}

// LinesOf lifts a per-line decoder into a whole-input parser; errors carry
// the 1-based line number.
func LinesOf[T any](decode func(line string) (T, error)) func(string) ([]T, error) {
	return func(raw string) ([]T, error) {
		lines, err := Lines(raw)
		if err != nil {
			return nil, err
		}
		out := make([]T, 0, len(lines))
		for i, l := range lines {
			v, err := decode(l)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d %q: %v", ErrParse, i+1, l, err)
			}
			out = append(out, v)
		}

		return out, nil
	}
}
