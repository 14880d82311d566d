package project

import "errors"

var (
	// ErrInvalidName is returned for an empty, oversized, or unsafe
	// project name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrInvalidOwner is returned for an empty or oversized owner name.
	ErrInvalidOwner = errors.New("invalid project owner")

	// ErrInvalidPrompt is returned for a custom prompt outside the
	// accepted length range.
	ErrInvalidPrompt = errors.New("invalid custom prompt")

	// ErrProjectExists is returned when creating a project whose name is
	// already taken.
	ErrProjectExists = errors.New("project already exists")

	// ErrProjectNotFound is returned when the named project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrNotIngested is returned when a project has neither a knowledge
	// blob nor a chunk index.
	ErrNotIngested = errors.New("project has no ingested content")
)
