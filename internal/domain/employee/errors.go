package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already registered with this phone number")
	ErrInvalidStatus    = errors.New("invalid employment status")
)
