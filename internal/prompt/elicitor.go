package prompt

import (
	"context"

	"ytfetch/internal/job"
)

const (
	linkTitle    = "📦 What are you downloading?"
	formatTitle  = "🎧 Which format do you want?"
	speedTitle   = "🚀 Download Speed"
	urlMessage   = "🔗 Paste YouTube URL: "
	audioMessage = "🎚️ Audio Quality [0=Best, 9=Worst] (default=0): "
	videoMessage = "🎚️ Max video resolution? [e.g., 720, 1080] (leave empty for best): "
	speedMessage = "Number of connections for each download (aria2c -x)? [1-16] (default=5): "
)

var (
	linkOptions   = []string{"Single YouTube Video", "YouTube Playlist"}
	formatOptions = []string{"Audio (MP3)", "Video (MP4)"}
)

// Elicitor walks the operator through the question sequence and returns the
// collected Choice.
type Elicitor struct {
	prompter Prompter
	strict   bool
}

// Option configures an Elicitor.
type Option func(*Elicitor)

// WithStrict enables eager validation of quality and connection answers.
func WithStrict(strict bool) Option {
	return func(e *Elicitor) {
		e.strict = strict
	}
}

// NewElicitor returns an Elicitor reading answers through p.
func NewElicitor(p Prompter, opts ...Option) *Elicitor {
	e := &Elicitor{prompter: p}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Elicit asks, in order, for the link kind, URL, format, quality and
// connection count. It returns ErrAborted when input ends and ctx.Err() when
// ctx is cancelled while a prompt is still waiting for an answer.
func (e *Elicitor) Elicit(ctx context.Context) (job.Choice, error) {
	if err := ctx.Err(); err != nil {
		return job.Choice{}, err
	}
	type result struct {
		choice job.Choice
		err    error
	}
	done := make(chan result, 1)
	go func() {
		choice, err := e.elicit()
		done <- result{choice: choice, err: err}
	}()
	select {
	case r := <-done:
		return r.choice, r.err
	case <-ctx.Done():
		// The reader stays blocked until input closes; its answer is dropped.
		return job.Choice{}, ctx.Err()
	}
}

func (e *Elicitor) elicit() (job.Choice, error) {
	var choice job.Choice

	idx, err := e.prompter.Choose(linkTitle, linkOptions)
	if err != nil {
		return job.Choice{}, err
	}
	choice.Link = job.SingleItem
	if idx == 1 {
		choice.Link = job.Collection
	}

	choice.URL, err = e.prompter.Ask(Question{Message: urlMessage, Validate: requireURL})
	if err != nil {
		return job.Choice{}, err
	}

	idx, err = e.prompter.Choose(formatTitle, formatOptions)
	if err != nil {
		return job.Choice{}, err
	}
	choice.Format = job.Audio
	if idx == 1 {
		choice.Format = job.Video
	}

	choice.Quality, err = e.prompter.Ask(e.qualityQuestion(choice.Format))
	if err != nil {
		return job.Choice{}, err
	}

	e.prompter.Section(speedTitle)
	choice.Parallelism, err = e.prompter.Ask(Question{
		Message:  speedMessage,
		Default:  job.DefaultParallelism,
		Validate: e.strictly(ValidateConnections),
	})
	if err != nil {
		return job.Choice{}, err
	}
	return choice, nil
}

func (e *Elicitor) qualityQuestion(format job.FormatFamily) Question {
	if format == job.Audio {
		return Question{
			Message:  audioMessage,
			Default:  job.DefaultAudioQuality,
			Validate: e.strictly(ValidateAudioQuality),
		}
	}
	return Question{
		Message:  videoMessage,
		Validate: e.strictly(ValidateMaxHeight),
	}
}

func (e *Elicitor) strictly(fn func(string) error) func(string) error {
	if !e.strict {
		return nil
	}
	return fn
}
