package measure

import "unicode"

const (
	zeroWidthSpace = '\u200b'
	noBreakSpace   = '\u00a0'
)

// token is a run of text between break opportunities.
type token struct {
	width float32
	// Width of the collapsed space before the token; 0 at the start of the
	// text and after a U+200B break.
	spaceBefore float32
}

// tokenize splits text at whitespace and U+200B. Whitespace runs collapse
// to a single space. No-break spaces stay inside their token.
func tokenize(m Measurer, text string) []token {
	var tokens []token
	space := m.Advance(" ")
	start := -1
	pendingSpace := false

	flush := func(end int) {
		if start < 0 {
			return
		}
		tok := token{width: m.Advance(text[start:end])}
		if pendingSpace && len(tokens) > 0 {
			tok.spaceBefore = space
		}
		tokens = append(tokens, tok)
		start = -1
		pendingSpace = false
	}

	for i, r := range text {
		switch {
		case r == zeroWidthSpace:
			flush(i)
		case unicode.IsSpace(r) && r != noBreakSpace:
			flush(i)
			pendingSpace = true
		case start < 0:
			start = i
		}
	}
	flush(len(text))
	return tokens
}

// wrap breaks tokens greedily into lines no wider than limit, except where
// a single token is wider. It returns the widest line and the line count.
func wrap(tokens []token, limit float32) (width float32, lines int) {
	var line float32
	for i, tok := range tokens {
		if i == 0 {
			line, lines = tok.width, 1
			continue
		}
		if next := line + tok.spaceBefore + tok.width; next <= limit {
			line = next
			continue
		}
		width = max(width, line)
		line = tok.width
		lines++
	}
	return max(width, line), lines
}
