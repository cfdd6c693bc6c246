package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Whitespace returns the whitespace following the token i.
func (s Sentence) Whitespace(i int) string {
	t := s.Tokens[i]
	if t.Ws != "" {
		return t.Ws
	}

	if i+1 >= len(s.Tokens) {
		return ""
	}

	diff := s.Tokens[i+1].Idx - t.Idx - utf8.RuneCountInString(t.Text)
	if diff > 0 {
		return strings.Repeat(" ", diff)
	}

	return ""
}

// Edit describes a change to the surface text of a token when rewriting a
// sentence.
type Edit struct {
	// Before is written in front of the token
	Before string

	// Replace, if not nil, substitutes the token text
	Replace *string

	// After is written after the token text and before its whitespace
	After string

	// Drop removes the token and its whitespace
	Drop bool
}

// SpanText returns the text of the tokens [start, end) with the original
// whitespace, the trailing whitespace of the last token included.
func (s Sentence) SpanText(start, end int) string {
	return s.Rewrite(start, end, nil)
}

// Rewrite returns the text of the tokens [start, end) applying the edits,
// keyed by token position.
func (s Sentence) Rewrite(start, end int, edits map[int]Edit) string {
	if start < 0 {
		start = 0
	}

	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}

	var str strings.Builder
	for i := start; i < end; i++ {
		t := s.Tokens[i]

		// in the parser output, both (or more) parts of a multi token word
		// have the same `text` and the same `idx`. Render the word once.
		if i > start && t.Ws == "" && t.Idx == s.Tokens[i-1].Idx && t.Text == s.Tokens[i-1].Text && t.Idx != 0 {
			continue
		}

		e, ok := edits[i]
		if ok && e.Drop {
			continue
		}

		str.WriteString(e.Before)
		if ok && e.Replace != nil {
			str.WriteString(*e.Replace)
		} else {
			str.WriteString(t.Text)
		}
		str.WriteString(e.After)
		str.WriteString(s.Whitespace(i))
	}

	return str.String()
}

// Text returns the surface text of the whole sentence, trailing whitespace
// removed.
func (s Sentence) Text() string {
	return strings.TrimRightFunc(s.SpanText(0, len(s.Tokens)), unicode.IsSpace)
}

// SubtreeText returns the text of the subtree of token i, with its trailing
// whitespace.
func (s Sentence) SubtreeText(i int) string {
	start, end := s.Subtree(i)
	return s.SpanText(start, end)
}

// UpperFirst returns str with its first letter in upper case.
func UpperFirst(str string) string {
	for i, r := range str {
		if unicode.IsLetter(r) {
			return str[:i] + string(unicode.ToUpper(r)) + str[i+utf8.RuneLen(r):]
		}

		if !unicode.IsSpace(r) && !isQuoteText(string(r)) {
			return str
		}
	}

	return str
}

// LowerFirst returns str with its first rune in lower case.
func LowerFirst(str string) string {
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError {
		return str
	}

	return string(unicode.ToLower(r)) + str[size:]
}
