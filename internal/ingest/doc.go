// Package ingest validates audio files and enqueues them for processing.
// It applies the configured extension and size limits and deduplicates
// against the existing queue.
package ingest
