package service

import "errors"

var (
	// ErrSourceNotFound means the configured question CSV does not exist.
	ErrSourceNotFound = errors.New("question source not found")
	// ErrInvalidSubmission means the submitted score/total pair is
	// inconsistent (score < 0, total < 0, or score > total).
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrNotFound means the requested record does not exist or is not owned
	// by the caller.
	ErrNotFound = errors.New("not found")
)
