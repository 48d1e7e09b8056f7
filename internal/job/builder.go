package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultOutputRoot   = "Downloads"
	DefaultArchivePath  = ".downloaded_files.txt"
	DefaultDownloader   = "aria2c"
	DefaultChunkSize    = "1M"
	DefaultRetries      = 5
	DefaultAudioQuality = "0"
	DefaultParallelism  = "5"

	AudioCodec     = "mp3"
	VideoContainer = "mp4"

	// PlaylistIndexField is the engine template field holding an item's
	// position inside its collection.
	PlaylistIndexField = "%(playlist_index)s"

	singleItemTemplate = "%(title)s.%(ext)s"
	collectionTemplate = PlaylistIndexField + " - %(title)s.%(ext)s"

	audioSelector       = "bestaudio/best"
	videoSelector       = "bestvideo+bestaudio/best"
	cappedVideoSelector = "bestvideo[height<=%s]+bestaudio/best"
)

// Options holds the environment-dependent inputs of Compose. Zero fields fall
// back to the package defaults.
type Options struct {
	OutputRoot  string
	ArchivePath string
	Downloader  string
	ChunkSize   string
	Retries     int
}

// DefaultOptions returns the options every job uses unless configured otherwise.
func DefaultOptions() Options {
	return Options{
		OutputRoot:  DefaultOutputRoot,
		ArchivePath: DefaultArchivePath,
		Downloader:  DefaultDownloader,
		ChunkSize:   DefaultChunkSize,
		Retries:     DefaultRetries,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if strings.TrimSpace(o.OutputRoot) == "" {
		o.OutputRoot = def.OutputRoot
	}
	if strings.TrimSpace(o.ArchivePath) == "" {
		o.ArchivePath = def.ArchivePath
	}
	if strings.TrimSpace(o.Downloader) == "" {
		o.Downloader = def.Downloader
	}
	if strings.TrimSpace(o.ChunkSize) == "" {
		o.ChunkSize = def.ChunkSize
	}
	if o.Retries <= 0 {
		o.Retries = def.Retries
	}
	return o
}

// OutputTemplate returns the engine path template for the link kind.
func OutputTemplate(root string, kind LinkKind) string {
	if kind == Collection {
		return filepath.Join(root, collectionTemplate)
	}
	return filepath.Join(root, singleItemTemplate)
}

// FormatSelector assembles the stream selection expression. Audio ignores
// quality; Video treats a non-empty quality as a maximum height.
func FormatSelector(family FormatFamily, quality string) string {
	if family == Audio {
		return audioSelector
	}
	if quality == "" {
		return videoSelector
	}
	return fmt.Sprintf(cappedVideoSelector, quality)
}

// Postprocessing returns the step list for the format family.
func Postprocessing(family FormatFamily, quality string) []Step {
	if family == Audio {
		return []Step{{Kind: StepExtractAudio, Codec: AudioCodec, Quality: quality}}
	}
	return []Step{{Kind: StepMergeContainer, Container: VideoContainer}}
}

// Compose maps a validated choice to a job specification. It performs no I/O
// and returns equal values for equal inputs.
func Compose(choice Choice, opts Options) Spec {
	opts = opts.withDefaults()
	return Spec{
		OutputRoot:     opts.OutputRoot,
		OutputTemplate: OutputTemplate(opts.OutputRoot, choice.Link),
		FormatSelector: FormatSelector(choice.Format, choice.Quality),
		Postprocessing: Postprocessing(choice.Format, choice.Quality),
		Delegation: Delegation{
			Binary:      opts.Downloader,
			Connections: choice.Parallelism,
			ChunkSize:   opts.ChunkSize,
		},
		Retries:      opts.Retries,
		IgnoreErrors: true,
		ArchivePath:  opts.ArchivePath,
	}
}

// Build validates the choice, composes the job and makes sure the output root
// exists.
func Build(choice Choice, opts Options) (Spec, error) {
	if err := choice.Validate(); err != nil {
		return Spec{}, err
	}
	spec := Compose(choice, opts)
	if err := os.MkdirAll(spec.OutputRoot, 0o755); err != nil {
		return Spec{}, fmt.Errorf("create output directory %q: %w", spec.OutputRoot, err)
	}
	return spec, nil
}
