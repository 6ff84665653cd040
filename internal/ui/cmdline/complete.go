package cmdline

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SetCompletions sets the words Tab completes to.
func (m *Model) SetCompletions(words []string) {
	m.completions = words
}

// complete replaces the word under the cursor with its best match.
func (m *Model) complete() {
	text := string(m.text)
	start := strings.LastIndexByte(text, ' ') + 1
	word := text[start:]
	if word == "" {
		return
	}
	if best, ok := Suggest(word, m.completions); ok {
		m.text = []rune(text[:start] + best + " ")
	}
}

// Suggest returns the candidate that best matches word, fuzzily.
func Suggest(word string, candidates []string) (string, bool) {
	if word == "" {
		return "", false
	}
	matches := fuzzy.Find(word, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
