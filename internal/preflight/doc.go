// Package preflight validates the runtime environment before queue
// processing starts: required binaries, directory permissions, and free
// disk space.
package preflight
