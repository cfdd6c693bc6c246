package sentence

const (
	OpenQuote  = "“"
	CloseQuote = "”"
)

func isQuoteText(text string) bool {
	switch text {
	case `"`, "“", "”", "``", "''":
		return true
	}

	return false
}

// IsQuote reports whether the token is a double quotation delimiter.
func (t Token) IsQuote() bool {
	return isQuoteText(t.Text)
}

// IsOpenQuote reports whether the token is unambiguously an opening
// delimiter.
func (t Token) IsOpenQuote() bool {
	switch t.Text {
	case "“", "``":
		return true
	case `"`:
		return t.Tag == "``"
	}

	return false
}

// IsCloseQuote reports whether the token is unambiguously a closing
// delimiter.
func (t Token) IsCloseQuote() bool {
	switch t.Text {
	case "”", "''":
		return true
	case `"`:
		return t.Tag == "''"
	}

	return false
}

// Quotes returns the positions of the quotation delimiters of the sentence.
func (s Sentence) Quotes() []int {
	quotes := []int{}
	for i, t := range s.Tokens {
		if t.IsQuote() {
			quotes = append(quotes, i)
		}
	}

	return quotes
}

// HasQuote reports whether the sentence contains a quotation delimiter.
func (s Sentence) HasQuote() bool {
	return len(s.Quotes()) > 0
}

// QuotePair is a matched opening and closing delimiter.
type QuotePair struct {
	Open  int
	Close int
}

// PairQuotes matches the delimiters of the sentence from left to right.
// Ambiguous straight quotes open when no quote is pending and close
// otherwise. It returns the matched pairs and the positions of the orphan
// delimiters.
func (s Sentence) PairQuotes() ([]QuotePair, []int) {
	pairs := []QuotePair{}
	orphans := []int{}
	open := -1

	for _, q := range s.Quotes() {
		t := s.Tokens[q]

		switch {
		case t.IsOpenQuote():
			if open >= 0 {
				orphans = append(orphans, open)
			}
			open = q
		case t.IsCloseQuote():
			if open < 0 {
				orphans = append(orphans, q)
				continue
			}
			pairs = append(pairs, QuotePair{Open: open, Close: q})
			open = -1
		default:
			if open < 0 {
				open = q
				continue
			}
			pairs = append(pairs, QuotePair{Open: open, Close: q})
			open = -1
		}
	}

	if open >= 0 {
		orphans = append(orphans, open)
	}

	return pairs, orphans
}
