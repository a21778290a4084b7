package model

import "errors"

var (
	// ErrEmptyDomain is returned when an option declares no candidate values.
	ErrEmptyDomain = errors.New("option has an empty value domain")
	// ErrDuplicateOption is returned when an option name is declared twice.
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrDuplicatePreset is returned when a preset name is declared twice.
	ErrDuplicatePreset = errors.New("duplicate preset")
	// ErrUnknownPreset is returned when a preset lookup fails.
	ErrUnknownPreset = errors.New("unknown preset")
)
