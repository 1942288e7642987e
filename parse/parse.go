// Package parse turns the comma-separated wall text into strengths.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadThreshold is returned by Threshold for input that is not a
// non-negative base-10 integer.
var ErrBadThreshold = errors.New("parse: threshold must be a non-negative integer")

// Strengths returns the valid strengths in text, in order.
func Strengths(text string) []int {
	values, _ := Split(text)
	return values
}

// Split parses comma-separated tokens. Each token is trimmed and read up to
// its first non-digit, so "12abc" is 12 and "3.5" is 3. A token with no
// leading digits, a negative value, or digits that overflow int is dropped
// and returned in dropped as written (trimmed). values is never nil.
func Split(text string) (values []int, dropped []string) {
	values = []int{}
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		n, ok := leadingInt(tok)
		if !ok || n < 0 {
			dropped = append(dropped, tok)
			continue
		}
		values = append(values, n)
	}
	return values, dropped
}

// leadingInt reads an optional sign followed by at least one decimal digit
// from the start of s and ignores the rest.
func leadingInt(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format renders strengths the way they are typed: "10, 20, 5".
func Format(strengths []int) string {
	parts := make([]string, len(strengths))
	for i, s := range strengths {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

// Threshold parses the K input. Unlike Split it is strict: the whole
// trimmed text must be a non-negative base-10 integer.
func Threshold(text string) (int, error) {
	t := strings.TrimSpace(text)
	k, err := strconv.Atoi(t)
	if err != nil || k < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadThreshold, text)
	}
	return k, nil
}
