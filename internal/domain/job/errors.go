package job

import "errors"

var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobClosed   = errors.New("job is no longer accepting applications")
)
