package pipeline

import (
	"strings"
	"unicode"
)

// common abbreviations that end with a period but do not end a sentence
var abbreviations = map[string]struct{}{
	"e.g": {}, "i.e": {}, "etc": {}, "vs": {}, "fig": {},
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "st": {},
	"no": {}, "al": {}, "approx": {},
}

// TokenizeSentences splits text into sentences, preserving their
// original order. Sentence boundaries are '.', '!' or '?' followed by
// whitespace and an upper-case letter, digit or quote; newline runs also
// break sentences so headings become their own unit. Whitespace-only
// segments are dropped.
func TokenizeSentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			out = append(out, collapseSpace(s))
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// paragraph / line break ends the current sentence
		if r == '\n' {
			flush()
			continue
		}
		b.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && isAbbreviation(b.String()) {
			continue
		}
		// look ahead past whitespace
		j := i + 1
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
			j++
		}
		if j >= len(runes) {
			flush()
			break
		}
		if j == i+1 {
			// no whitespace after the period: mid-token, e.g. "10.1.2.3"
			continue
		}
		next := runes[j]
		if next == '\n' || unicode.IsUpper(next) || unicode.IsDigit(next) || next == '"' || next == '\'' {
			flush()
			i = j - 1
		}
	}
	flush()
	return out
}

func isAbbreviation(s string) bool {
	s = strings.TrimSuffix(s, ".")
	idx := strings.LastIndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '('
	})
	word := strings.ToLower(s[idx+1:])
	_, ok := abbreviations[word]
	return ok
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
