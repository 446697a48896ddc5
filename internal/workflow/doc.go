// Package workflow drives queued recordings through the transcription
// pipeline. A single poll loop picks the oldest actionable item, moves it to
// its processing status, runs the registered stage handler, and persists the
// outcome. Failures are absorbed per item so one bad recording never stalls
// the queue.
package workflow
