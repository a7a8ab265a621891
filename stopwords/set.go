package stopwords

import "sort"

// Set is an immutable collection of normalized words. The zero value is an
// empty set. Sets returned by the resolver are shared between cache entries
// and callers; nothing mutates them after construction.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from words. The slice is copied; words are stored
// verbatim, so normalize before constructing if needed.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

func setFromMap(m map[string]struct{}) Set {
	return Set{words: m}
}

// Contains reports whether word is a member. Membership is exact: the
// caller is responsible for normalizing word the same way the set's words
// were normalized.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the members as a sorted copy.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Union returns a new Set holding the members of s and all others.
func (s Set) Union(others ...Set) Set {
	merged := make(map[string]struct{}, len(s.words))
	for w := range s.words {
		merged[w] = struct{}{}
	}
	for _, other := range others {
		for w := range other.words {
			merged[w] = struct{}{}
		}
	}
	return Set{words: merged}
}
