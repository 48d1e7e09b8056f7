package job

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is returned when a Choice carries an unknown enum value or
// an empty URL.
var ErrInvalidChoice = errors.New("invalid choice")

// LinkKind distinguishes a single item URL from a collection URL.
type LinkKind int

const (
	// SingleItem names one retrievable item.
	SingleItem LinkKind = iota + 1
	// Collection names an ordered group of items such as a playlist.
	Collection
)

func (k LinkKind) String() string {
	switch k {
	case SingleItem:
		return "single"
	case Collection:
		return "collection"
	default:
		return fmt.Sprintf("LinkKind(%d)", int(k))
	}
}

// FormatFamily selects between audio extraction and video download.
type FormatFamily int

const (
	// Audio extracts an audio track and transcodes it.
	Audio FormatFamily = iota + 1
	// Video combines the best video and audio streams into one container.
	Video
)

func (f FormatFamily) String() string {
	switch f {
	case Audio:
		return "audio"
	case Video:
		return "video"
	default:
		return fmt.Sprintf("FormatFamily(%d)", int(f))
	}
}

// Choice holds the answers collected from the operator.
//
// Quality is interpreted by Format: for Audio it is the codec quality level
// handed to the transcoder, for Video it is an optional maximum height.
// Parallelism is carried uninterpreted.
type Choice struct {
	Link        LinkKind
	Format      FormatFamily
	Quality     string
	Parallelism string
	URL         string
}

// Validate reports whether the choice can be turned into a job.
func (c Choice) Validate() error {
	switch c.Link {
	case SingleItem, Collection:
	default:
		return fmt.Errorf("%w: link kind %d", ErrInvalidChoice, int(c.Link))
	}
	switch c.Format {
	case Audio, Video:
	default:
		return fmt.Errorf("%w: format family %d", ErrInvalidChoice, int(c.Format))
	}
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("%w: url is empty", ErrInvalidChoice)
	}
	return nil
}
