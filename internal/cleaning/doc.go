// Package cleaning filters filler language out of raw transcripts using the
// trained vocabulary. The Clean function is the pure core; the Stage type
// wires it into the workflow so queued items move from transcribed to
// cleaned.
package cleaning
