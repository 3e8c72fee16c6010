package models

// Domain error taxonomy. Each type maps to exactly one HTTP status in the
// helper package; "not found" is also returned for resources owned by a
// different user so existence never leaks.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorDuplicate struct {
	Message string
}

func (e ErrorDuplicate) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }
