package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// TitleCase normalizes free-text answers like names and cities: each
// word gets an upper first letter, the rest lowered.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ParseChoice parses a menu reply as a plain unsigned decimal. Signs,
// spaces and any other decoration make the reply invalid; the enumerated
// set is checked by the caller.
func ParseChoice(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
