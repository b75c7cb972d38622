package navigation

import (
	"errors"
	"fmt"
)

var (
	ErrNoSuchEntry = errors.New("no such entry")
	ErrNotFolder   = errors.New("not a folder")
	ErrAtRoot      = errors.New("already at the root")
)

// NavigationError is a rejected transition. The session state is unchanged.
type NavigationError struct {
	Op       string
	Location string
	Name     string
	Err      error
}

func (e *NavigationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Location, e.Err)
	}
	return fmt.Sprintf("%s %q in %s: %v", e.Op, e.Name, e.Location, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}
