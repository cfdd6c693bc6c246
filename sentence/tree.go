package sentence

import "strings"

// Root returns the index of the syntactic head of the sentence. The root
// either carries the ROOT dependency label or is its own head.
func (s Sentence) Root() (int, bool) {
	for i, t := range s.Tokens {
		if strings.EqualFold(t.Dep, "root") {
			return i, true
		}
	}

	for i, t := range s.Tokens {
		if t.Head == t.Index {
			return i, true
		}
	}

	return 0, false
}

// RootToken returns the root token, or false if the sentence has no root.
func (s Sentence) RootToken() (Token, bool) {
	i, ok := s.Root()
	if !ok {
		return Token{}, false
	}

	return s.Tokens[i], true
}

// RootLemma returns the lemma of the root token, empty if there is no root.
func (s Sentence) RootLemma() string {
	t, ok := s.RootToken()
	if !ok {
		return ""
	}

	return t.Lemma
}

// Children returns the indexes of the direct dependents of the token i, in
// sentence order.
func (s Sentence) Children(i int) []int {
	head := s.Tokens[i].Index
	children := []int{}
	for j, t := range s.Tokens {
		if j == i {
			continue
		}

		if t.Head == head {
			children = append(children, j)
		}
	}

	return children
}

// Lefts returns the direct dependents of the token i lying to its left.
func (s Sentence) Lefts(i int) []int {
	lefts := []int{}
	for _, c := range s.Children(i) {
		if c < i {
			lefts = append(lefts, c)
		}
	}

	return lefts
}

// Rights returns the direct dependents of the token i lying to its right.
func (s Sentence) Rights(i int) []int {
	rights := []int{}
	for _, c := range s.Children(i) {
		if c > i {
			rights = append(rights, c)
		}
	}

	return rights
}

// Subtree returns the span [start, end) covered by the token i and all its
// descendants.
func (s Sentence) Subtree(i int) (int, int) {
	start, end := i, i
	seen := map[int]bool{i: true}
	stack := []int{i}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n < start {
			start = n
		}

		if n > end {
			end = n
		}

		for _, c := range s.Children(n) {
			// malformed parses can contain cycles
			if seen[c] {
				continue
			}

			seen[c] = true
			stack = append(stack, c)
		}
	}

	return start, end + 1
}

// HasChildDep reports whether the token i has a direct dependent with one of
// the given dependency labels.
func (s Sentence) HasChildDep(i int, deps ...string) bool {
	for _, c := range s.Children(i) {
		for _, d := range deps {
			if s.Tokens[c].Dep == d {
				return true
			}
		}
	}

	return false
}
