package location

import "errors"

var (
	ErrLocationNotFound   = errors.New("allowed location not found")
	ErrLocationNameExists = errors.New("an allowed location with this name already exists")
)
