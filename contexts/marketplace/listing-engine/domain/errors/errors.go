package errors

import "errors"

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrValidationFailed = errors.New("listing failed publish validation")
	ErrNoImageSources   = errors.New("no image files in batch")
	ErrImageReadFailed  = errors.New("image read failed")
)
