package training

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"voxify/internal/documents"
	"voxify/internal/logging"
	"voxify/internal/vocabulary"
)

// ErrNoCorpus indicates training found no usable document text. The training
// run fails and any previously persisted vocabulary is left untouched.
var ErrNoCorpus = errors.New("no usable text in reference corpus")

// Vocabulary derivation thresholds. These are design constants, not knobs: the
// heuristic was tuned as a set and per-call configuration would let callers
// produce vocabularies that silently disagree with each other.
const (
	// TermMinCount is the corpus-wide frequency a word needs to become a term.
	TermMinCount = 3
	// TermMinLength is the minimum character count for a term (length > 3).
	TermMinLength = 4
	// PhraseMinCount is the corpus-wide frequency a bigram or trigram needs
	// to become a phrase.
	PhraseMinCount = 2
)

// ExtractFunc converts a reference document path into plain text.
type ExtractFunc func(path string) (string, error)

// Report summarizes a training run for logging and notifications.
type Report struct {
	DocumentsScanned int
	DocumentsUsed    int
	DocumentsSkipped int
	Terms            int
	Phrases          int
}

// Trainer derives a domain vocabulary from a corpus of reference documents.
// It holds no mutable state across runs; each Train call is independent.
type Trainer struct {
	extract ExtractFunc
	logger  *slog.Logger
}

// NewTrainer constructs a trainer using the documents package for text
// extraction. A nil logger is replaced with a no-op logger.
func NewTrainer(logger *slog.Logger) *Trainer {
	return NewTrainerWithExtractor(logger, documents.Extract)
}

// NewTrainerWithExtractor constructs a trainer with a custom extraction
// function (used in tests).
func NewTrainerWithExtractor(logger *slog.Logger, extract ExtractFunc) *Trainer {
	if extract == nil {
		extract = documents.Extract
	}
	return &Trainer{
		extract: extract,
		logger:  logging.NewComponentLogger(logger, "trainer"),
	}
}

// Train reads every document, counts token and n-gram frequencies across the
// corpus, and derives a fresh Vocabulary by thresholding. Documents that fail
// extraction are skipped; if none yield text the run fails with ErrNoCorpus.
//
// N-grams never span a document boundary: each document's token stream is
// windowed independently before counts are aggregated.
func (t *Trainer) Train(ctx context.Context, paths []string) (*vocabulary.Vocabulary, Report, error) {
	var report Report
	report.DocumentsScanned = len(paths)

	wordFreq := make(map[string]int)
	bigramFreq := make(map[string]int)
	trigramFreq := make(map[string]int)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		text, err := t.extract(path)
		if err != nil {
			report.DocumentsSkipped++
			t.logger.Warn("skipping unreadable reference document",
				logging.String("document", filepath.Base(path)),
				logging.Error(err),
			)
			continue
		}

		tokens := Tokenize(text)
		if len(tokens) == 0 {
			report.DocumentsSkipped++
			t.logger.Debug("reference document yielded no tokens",
				logging.String("document", filepath.Base(path)),
			)
			continue
		}
		report.DocumentsUsed++

		for _, token := range tokens {
			wordFreq[token]++
		}
		for _, bigram := range ngrams(tokens, 2) {
			bigramFreq[bigram]++
		}
		for _, trigram := range ngrams(tokens, 3) {
			trigramFreq[trigram]++
		}
	}

	if report.DocumentsUsed == 0 {
		return nil, report, ErrNoCorpus
	}

	var terms []string
	for word, count := range wordFreq {
		if count >= TermMinCount && len(word) >= TermMinLength && !IsStopword(word) {
			terms = append(terms, word)
		}
	}

	var phrases []string
	for bigram, count := range bigramFreq {
		if count >= PhraseMinCount {
			phrases = append(phrases, bigram)
		}
	}
	for trigram, count := range trigramFreq {
		if count >= PhraseMinCount {
			phrases = append(phrases, trigram)
		}
	}

	vocab := vocabulary.New(terms, phrases)
	report.Terms = vocab.TermCount()
	report.Phrases = vocab.PhraseCount()

	t.logger.Info("vocabulary training complete",
		logging.Int("documents_used", report.DocumentsUsed),
		logging.Int("documents_skipped", report.DocumentsSkipped),
		logging.Int("terms", report.Terms),
		logging.Int("phrases", report.Phrases),
	)
	return vocab, report, nil
}
