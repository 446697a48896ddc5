// Package main hosts the Voxify CLI entrypoint and command graph.
//
// The Cobra-based command tree covers queueing audio files, running the
// transcription pipeline, vocabulary training, queue maintenance, and
// configuration scaffolding. It centralizes configuration resolution and
// store access so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
