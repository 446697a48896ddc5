// Package documents extracts plain text from reference documents used for
// vocabulary training. The trainer treats it as an opaque collaborator: a
// path goes in, text comes out, and unsupported formats are reported so the
// caller can skip them.
package documents
