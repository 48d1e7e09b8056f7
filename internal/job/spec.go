package job

// StepKind names a postprocessing step understood by the download engine.
type StepKind string

const (
	// StepExtractAudio converts the fetched stream into an audio-only file.
	StepExtractAudio StepKind = "extract-audio"
	// StepMergeContainer muxes separately fetched video and audio into one container.
	StepMergeContainer StepKind = "merge-container"
)

// Step is one postprocessing transformation. Codec and Quality apply to
// StepExtractAudio; Container applies to StepMergeContainer.
type Step struct {
	Kind      StepKind
	Codec     string
	Quality   string
	Container string
}

// Delegation describes how the engine hands byte transfer to the external
// segment downloader.
type Delegation struct {
	Binary      string
	Connections string
	ChunkSize   string
}

// Args returns the downloader's own arguments: connections per server and
// minimum split size.
func (d Delegation) Args() []string {
	return []string{"-x", d.Connections, "-k", d.ChunkSize}
}

// Spec is a complete job description handed to the download engine.
// Values are produced by Compose and are never mutated afterwards.
type Spec struct {
	OutputRoot     string
	OutputTemplate string
	FormatSelector string
	Postprocessing []Step
	Delegation     Delegation
	Retries        int
	IgnoreErrors   bool
	ArchivePath    string
}

// AudioExtraction returns the extract-audio step when present.
func (s Spec) AudioExtraction() (Step, bool) {
	for _, step := range s.Postprocessing {
		if step.Kind == StepExtractAudio {
			return step, true
		}
	}
	return Step{}, false
}

// MergeContainer returns the target container of the merge step, or "" when
// the pipeline does not merge.
func (s Spec) MergeContainer() string {
	for _, step := range s.Postprocessing {
		if step.Kind == StepMergeContainer {
			return step.Container
		}
	}
	return ""
}
