// Package runner submits a job specification and URL to the download engine
// and reports an explicit Outcome: Completed, EngineFailure with the engine's
// message, or UnexpectedFailure for anything else. Neither failure is fatal to
// the caller. An advisory lock beside the skip archive keeps concurrent runs in
// one directory from appending to it at the same time.
package runner
