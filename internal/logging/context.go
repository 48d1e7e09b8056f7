package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID correlates every line emitted by one interactive session.
	FieldRunID = "run_id"
)

// NewRunID returns a fresh identifier for one session.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a logger tagging every record with the run identifier.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID == "" {
		return logger
	}
	return logger.With(slog.String(FieldRunID, runID))
}
