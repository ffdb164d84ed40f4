package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this job")
	ErrInvalidStatus       = errors.New("invalid application status")
)
