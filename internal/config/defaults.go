package config

const (
	defaultOutputDir   = "Downloads"
	defaultArchiveFile = ".downloaded_files.txt"
	defaultYTDLP       = "yt-dlp"
	defaultAria2c      = "aria2c"
	defaultFFmpeg      = "ffmpeg"
	defaultChunkSize   = "1M"
	defaultRetries     = 5
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			ArchiveFile: defaultArchiveFile,
		},
		Tools: Tools{
			YTDLP:  defaultYTDLP,
			Aria2c: defaultAria2c,
			FFmpeg: defaultFFmpeg,
		},
		Download: Download{
			ChunkSize: defaultChunkSize,
			Retries:   defaultRetries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
