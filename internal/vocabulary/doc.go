// Package vocabulary defines the learned term/phrase sets and their
// persistent JSON store.
//
// The Vocabulary value is built once per training run and treated as
// immutable afterwards; the workflow loads it at startup and shares the same
// instance across every cleaning call. The store is a single JSON file with
// two named string arrays so it round-trips cleanly and stays inspectable
// with ordinary tools.
package vocabulary
