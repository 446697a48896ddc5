// Package training builds the domain vocabulary from a reference corpus.
//
// Documents are tokenized into lowercase alphabetic runs, windowed into
// bigrams and trigrams per document, and counted across the whole corpus.
// Thresholding on those counts (plus a stoplist of common filler words)
// yields the term and phrase sets. Frequency tables are transient; only the
// derived Vocabulary leaves this package.
package training
