package dex

import "errors"

var (
	// ErrUnknownMod is returned for a mod name the registry was not built with.
	ErrUnknownMod = errors.New("unknown mod")
	// ErrInheritWithoutParent is returned when an inherit entry has nothing to inherit from.
	ErrInheritWithoutParent = errors.New("inherit without parent record")
	// ErrAliasCycle is returned when alias definitions refer back to themselves.
	ErrAliasCycle = errors.New("alias cycle")
	// ErrNotFound is returned by operations that need an existing record.
	ErrNotFound = errors.New("record not found")
)
