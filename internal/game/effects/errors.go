package effects

import (
	"errors"
	"fmt"

	"github.com/vgcsim/battle-engine-go/internal/game/rules"
)

var (
	// ErrStackLimit is the nesting guard tripping.
	ErrStackLimit = errors.New("stack limit exceeded")
	// ErrLineLimit is the log-growth guard tripping.
	ErrLineLimit = errors.New("line limit exceeded")
)

// IntegrityError aborts the current action after the engine detects runaway
// mutual triggering. It is returned unchanged through every enclosing dispatch.
type IntegrityError struct {
	Err    error
	Event  rules.EventID
	Parent rules.EventID
	Root   rules.EventID
	Depth  int
	Lines  int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%v: event %s (parent %s, root %s, depth %d, pending lines %d)",
		e.Err, e.Event, e.Parent, e.Root, e.Depth, e.Lines)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
