package whisper

// UVXCommand is the launcher used to run the transcription tool without a
// system-wide Python install.
const UVXCommand = "uvx"

// WhisperPackage is the PyPI package pulled by uvx.
const WhisperPackage = "openai-whisper"

// WhisperEntrypoint is the console script exposed by the package.
const WhisperEntrypoint = "whisper"

// DefaultModel balances accuracy against download size and runtime.
const DefaultModel = "base"

// DefaultLanguage is passed to whisper so language detection never runs.
const DefaultLanguage = "en"

// OutputFormat requests the JSON payload the service parses for text and
// segment timings.
const OutputFormat = "json"

// Config carries the tunable transcription settings.
type Config struct {
	Model    string
	Language string
}
