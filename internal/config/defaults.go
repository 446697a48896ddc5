package config

const (
	defaultOutputDir          = "~/voxify/transcripts"
	defaultLogDir             = "~/.local/share/voxify/logs"
	defaultVocabularyPath     = "~/.local/share/voxify/vocabulary.json"
	defaultWhisperModel       = "base"
	defaultWhisperLanguage    = "en"
	defaultWhisperTimeout     = 1800
	defaultMaxFileSizeMB      = 100
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultQueuePollInterval  = 5
	defaultErrorRetryInterval = 10
	defaultNotifyTimeout      = 10
)

func defaultAudioExtensions() []string {
	return []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".wma"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:      defaultOutputDir,
			LogDir:         defaultLogDir,
			VocabularyPath: defaultVocabularyPath,
		},
		Whisper: Whisper{
			Model:          defaultWhisperModel,
			Language:       defaultWhisperLanguage,
			TimeoutSeconds: defaultWhisperTimeout,
		},
		Ingest: Ingest{
			Extensions:    defaultAudioExtensions(),
			MaxFileSizeMB: defaultMaxFileSizeMB,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Queue:          true,
			Training:       true,
			Errors:         true,
		},
		Workflow: Workflow{
			QueuePollInterval:  defaultQueuePollInterval,
			ErrorRetryInterval: defaultErrorRetryInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
