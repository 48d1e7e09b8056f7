package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minConnections = 1
	maxConnections = 16
	bestAudio      = 0
	worstAudio     = 9
)

func requireURL(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("Please paste a URL.")
	}
	return nil
}

// ValidateConnections accepts an integer connection count from 1 to 16.
func ValidateConnections(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < minConnections || n > maxConnections {
		return fmt.Errorf("Please enter a whole number from %d to %d.", minConnections, maxConnections)
	}
	return nil
}

// ValidateAudioQuality accepts a VBR level from 0 (best) to 9 (worst) or a
// bitrate such as 128K.
func ValidateAudioQuality(value string) error {
	if n, err := strconv.Atoi(value); err == nil && n >= bestAudio && n <= worstAudio {
		return nil
	}
	if rate, ok := strings.CutSuffix(strings.ToUpper(value), "K"); ok {
		if n, err := strconv.Atoi(rate); err == nil && n > 0 {
			return nil
		}
	}
	return fmt.Errorf("Please enter a level from %d to %d or a bitrate such as 192K.", bestAudio, worstAudio)
}

// ValidateMaxHeight accepts an empty answer (no cap) or a positive height.
func ValidateMaxHeight(value string) error {
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return nil
	}
	return errors.New("Please enter a height such as 720, or leave it empty.")
}
