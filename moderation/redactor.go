// Package moderation redacts restricted terms from outbound queries
// before they leave for the retrieval backend. Confidential compound
// code names and internal project identifiers must never appear in a
// request, however the user spelled or spaced them.
package moderation

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"biograph/errors"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Redactor struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// runeMap relates the normalized text back to positions in the
// original, so redaction hits the characters the user actually typed.
type runeMap struct {
	normalized []rune
	origIdx    []int
}

// NewRedactor builds the Aho-Corasick automaton over a normalized copy
// of the restricted terms.
func NewRedactor(restricted []string, replacement rune) (*Redactor, error) {
	if len(restricted) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(restricted))
	for i, term := range restricted {
		patterns[i] = normalizeTerm([]rune(term))
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Redactor{matcher: machine, replacement: replacement}, nil
}

// Redact replaces every occurrence of a restricted term with the
// replacement rune, preserving the surrounding text untouched.
func (r *Redactor) Redact(text string) string {
	mapping := normalize(text)
	if len(mapping.normalized) == 0 {
		return text
	}

	hits := r.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(hits) == 0 {
		return text
	}

	out := []rune(text)
	for _, hit := range hits {
		start := hit.Pos
		end := start + len(hit.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		from := mapping.origIdx[start]
		to := mapping.origIdx[end-1] + 1
		for i := from; i < to; i++ {
			out[i] = r.replacement
		}
	}
	return string(out)
}

// ParseTerms reads one restricted term per line, skipping blanks and
// "#" comments.
func ParseTerms(reader io.Reader) ([]string, error) {
	var terms []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}

// normalize lowercases the input and strips separators while tracking
// where each kept rune came from, defeating spaced-out or punctuated
// spellings of a restricted term.
func normalize(input string) runeMap {
	orig := []rune(input)
	mapping := runeMap{
		normalized: make([]rune, 0, len(orig)),
		origIdx:    make([]int, 0, len(orig)),
	}
	for i, r := range orig {
		if isSeparator(r) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(r))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeTerm(term []rune) []rune {
	out := make([]rune, 0, len(term))
	for _, r := range term {
		if isSeparator(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
