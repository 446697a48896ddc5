package vocabulary_test

import (
	"testing"

	"voxify/internal/vocabulary"
)

func TestMembership(t *testing.T) {
	v := vocabulary.New(
		[]string{"infarction", "diagnosis"},
		[]string{"acute myocardial infarction", "patient presented"},
	)

	if !v.HasTerm("infarction") {
		t.Fatal("expected infarction to be a term")
	}
	if v.HasTerm("acute myocardial infarction") {
		t.Fatal("phrases must not leak into term membership")
	}
	if !v.HasPhrase("patient presented") {
		t.Fatal("expected bigram phrase membership")
	}
	if v.HasPhrase("presented patient") {
		t.Fatal("phrase membership must be exact")
	}
}

func TestDuplicatesCollapse(t *testing.T) {
	v := vocabulary.New([]string{"stent", "stent", "stent"}, []string{"mitral valve", "mitral valve"})
	if v.TermCount() != 1 {
		t.Fatalf("TermCount = %d, want 1", v.TermCount())
	}
	if v.PhraseCount() != 1 {
		t.Fatalf("PhraseCount = %d, want 1", v.PhraseCount())
	}
}

func TestIsEmpty(t *testing.T) {
	if !vocabulary.Empty().IsEmpty() {
		t.Fatal("Empty() should be empty")
	}
	var nilVocab *vocabulary.Vocabulary
	if !nilVocab.IsEmpty() {
		t.Fatal("nil vocabulary should report empty")
	}
	if vocabulary.New([]string{"stent"}, nil).IsEmpty() {
		t.Fatal("vocabulary with a term is not empty")
	}
	if vocabulary.New(nil, []string{"mitral valve"}).IsEmpty() {
		t.Fatal("vocabulary with a phrase is not empty")
	}
}

func TestEqualIsSetEquality(t *testing.T) {
	a := vocabulary.New([]string{"b", "a"}, []string{"x y"})
	b := vocabulary.New([]string{"a", "b"}, []string{"x y"})
	if !a.Equal(b) {
		t.Fatal("order must not affect equality")
	}
	c := vocabulary.New([]string{"a"}, []string{"x y"})
	if a.Equal(c) {
		t.Fatal("different term sets must not be equal")
	}
	if !vocabulary.Empty().Equal(nil) {
		t.Fatal("empty and nil vocabularies compare equal")
	}
}

func TestSortedAccessors(t *testing.T) {
	v := vocabulary.New([]string{"zebra", "aorta"}, []string{"b c", "a b"})
	terms := v.Terms()
	if len(terms) != 2 || terms[0] != "aorta" || terms[1] != "zebra" {
		t.Fatalf("Terms() = %v", terms)
	}
	phrases := v.Phrases()
	if len(phrases) != 2 || phrases[0] != "a b" {
		t.Fatalf("Phrases() = %v", phrases)
	}
}
