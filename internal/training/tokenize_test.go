package training

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "The patient presented", []string{"the", "patient", "presented"}},
		{"punctuation separates", "chest-pain, dyspnea.", []string{"chest", "pain", "dyspnea"}},
		{"digits separate", "ECG12lead reading3", []string{"ecg", "lead", "reading"}},
		{"empty", "", nil},
		{"no letters", "123 456 !?", nil},
		{"mixed case", "Acute MI", []string{"acute", "mi"}},
		{"trailing token", "dosage 5mg daily", []string{"dosage", "mg", "daily"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNgrams(t *testing.T) {
	tokens := []string{"acute", "myocardial", "infarction", "noted"}

	bigrams := ngrams(tokens, 2)
	wantBigrams := []string{"acute myocardial", "myocardial infarction", "infarction noted"}
	if !reflect.DeepEqual(bigrams, wantBigrams) {
		t.Fatalf("bigrams = %v, want %v", bigrams, wantBigrams)
	}

	trigrams := ngrams(tokens, 3)
	wantTrigrams := []string{"acute myocardial infarction", "myocardial infarction noted"}
	if !reflect.DeepEqual(trigrams, wantTrigrams) {
		t.Fatalf("trigrams = %v, want %v", trigrams, wantTrigrams)
	}

	if got := ngrams([]string{"solo"}, 2); got != nil {
		t.Fatalf("short sequence should yield no bigrams, got %v", got)
	}
	if got := ngrams([]string{"a", "b"}, 3); got != nil {
		t.Fatalf("short sequence should yield no trigrams, got %v", got)
	}
}

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"um", "basically", "the", "been"} {
		if !IsStopword(word) {
			t.Errorf("expected %q on stoplist", word)
		}
	}
	for _, word := range []string{"diagnosis", "stent", ""} {
		if IsStopword(word) {
			t.Errorf("did not expect %q on stoplist", word)
		}
	}
}
