package scaffold

import (
	"errors"

	"github.com/goliatone/go-formscaffold/pkg/form"
)

var (
	// ErrInvalidFieldType is returned when a composite descriptor or a type
	// override names a type that is unknown or lacks the required capability.
	ErrInvalidFieldType = errors.New("scaffold: invalid field type")

	// ErrNoActiveTab is returned when a field is inserted in tabbed mode
	// before any tab key was seen.
	ErrNoActiveTab = errors.New("scaffold: no active tab")

	// ErrUnknownDescriptor is returned for unrecognised field descriptors
	// when strict descriptor checking is enabled.
	ErrUnknownDescriptor = errors.New("scaffold: unknown field descriptor")

	// ErrMethodArguments is returned when a configured method call receives
	// arguments it cannot use.
	ErrMethodArguments = form.ErrMethodArguments
)
