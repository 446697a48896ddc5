// Package services defines shared utilities consumed by the workflow stage
// handlers and external integrations: context helpers that stamp queue item
// IDs, stage names, and correlation identifiers for logging, plus structured
// error markers and the Wrap helper that keep failure messages uniform
// across the pipeline.
package services
