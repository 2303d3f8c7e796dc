package workorder

import (
	"errors"
)

var (
	// Authorization: the acting technician may not edit this work order.
	ErrForbidden = errors.New("work order is not editable by this technician")
	// Validation.
	ErrMissingAddress     = errors.New("postal code and house number are required")
	ErrNoCatalogItem      = errors.New("no catalog item selected")
	ErrUnknownCatalogItem = errors.New("catalog item not found or inactive")
	ErrUnknownLookup      = errors.New("unknown lookup context")
	// Not found.
	ErrNotFound    = errors.New("work order not found")
	ErrLinkInvalid = errors.New("share link does not match a work order")
	// Another mutating request for the same work order is still running.
	ErrBusy = errors.New("work order is busy")
	// The detail session was closed while the request was running; its result was discarded.
	ErrSessionClosed = errors.New("work order session closed")
)

// BackendError wraps a failure of the record store, object storage or draft
// store. Its message is the backend's message, unchanged.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// IsBackend reports whether err is a backend failure.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
