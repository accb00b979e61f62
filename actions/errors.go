package actions

import (
	"errors"
	"fmt"
)

// ErrUnknownEasing is returned by Lookup for names outside the catalog.
var ErrUnknownEasing = errors.New("unknown easing")

// MissingCapabilityError reports a target entry that cannot be driven by an action.
type MissingCapabilityError struct {
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("target is missing capability %q", e.Capability)
}
