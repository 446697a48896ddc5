// Package transcribing implements the stage that turns queued audio into raw
// transcript text by shelling out to whisper via uvx.
package transcribing
