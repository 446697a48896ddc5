// Package export writes cleaned transcripts as formatted .txt files into the
// configured output directory, completing the pipeline for an item.
package export
