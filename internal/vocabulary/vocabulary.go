package vocabulary

import "sort"

// Vocabulary is the learned set of domain terms and phrases. Terms are single
// normalized words; phrases are two- or three-word space-joined strings.
//
// A Vocabulary is immutable after publish: training builds a fresh value and
// replaces the previous one wholesale, so readers never observe partial state.
type Vocabulary struct {
	terms   map[string]struct{}
	phrases map[string]struct{}
}

// New builds a Vocabulary from term and phrase lists. Duplicates collapse.
func New(terms, phrases []string) *Vocabulary {
	v := &Vocabulary{
		terms:   make(map[string]struct{}, len(terms)),
		phrases: make(map[string]struct{}, len(phrases)),
	}
	for _, t := range terms {
		v.terms[t] = struct{}{}
	}
	for _, p := range phrases {
		v.phrases[p] = struct{}{}
	}
	return v
}

// Empty returns a Vocabulary with no terms or phrases (the untrained state).
func Empty() *Vocabulary {
	return New(nil, nil)
}

// HasTerm reports whether word is a known domain term.
func (v *Vocabulary) HasTerm(word string) bool {
	if v == nil {
		return false
	}
	_, ok := v.terms[word]
	return ok
}

// HasPhrase reports whether the space-joined n-gram is a known domain phrase.
func (v *Vocabulary) HasPhrase(phrase string) bool {
	if v == nil {
		return false
	}
	_, ok := v.phrases[phrase]
	return ok
}

// IsEmpty reports whether the vocabulary holds no entries at all. Cleaning
// treats an empty vocabulary as "not trained" and passes text through.
func (v *Vocabulary) IsEmpty() bool {
	return v == nil || (len(v.terms) == 0 && len(v.phrases) == 0)
}

// TermCount returns the number of learned terms.
func (v *Vocabulary) TermCount() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// PhraseCount returns the number of learned phrases.
func (v *Vocabulary) PhraseCount() int {
	if v == nil {
		return 0
	}
	return len(v.phrases)
}

// Terms returns the terms in sorted order.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	return sortedKeys(v.terms)
}

// Phrases returns the phrases in sorted order.
func (v *Vocabulary) Phrases() []string {
	if v == nil {
		return nil
	}
	return sortedKeys(v.phrases)
}

// Equal reports set equality on both fields.
func (v *Vocabulary) Equal(other *Vocabulary) bool {
	if v.IsEmpty() && other.IsEmpty() {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if len(v.terms) != len(other.terms) || len(v.phrases) != len(other.phrases) {
		return false
	}
	for t := range v.terms {
		if _, ok := other.terms[t]; !ok {
			return false
		}
	}
	for p := range v.phrases {
		if _, ok := other.phrases[p]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
