package visits

import "errors"

var (
	EmptyNotesErr = errors.New("visit notes must not be empty")
)
