package moderation

import "errors"

// ErrClassifierRequired is returned when no classifier backend is provided.
var ErrClassifierRequired = errors.New("classifier is required")
