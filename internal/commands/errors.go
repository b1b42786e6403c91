package commands

import "errors"

var (
	// ErrMissingArgument is returned when no export path is given.
	ErrMissingArgument = errors.New("no filename provided")
	// ErrUnreadableFile wraps failures reading the export.
	ErrUnreadableFile = errors.New("unreadable file")
)
