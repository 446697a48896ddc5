// Package whisper wraps the openai-whisper CLI launched through uvx. The
// service shells out, waits for the JSON payload, and hands back plain text
// for the cleaning stage.
package whisper
