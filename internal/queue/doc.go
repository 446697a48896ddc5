// Package queue persists transcription work items in SQLite and exposes the
// status transitions the workflow manager drives. The database lives next to
// the logs so clearing state is a single directory.
package queue
