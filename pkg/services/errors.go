package services

import "errors"

var (
	// ErrNotConfigured means a required external identifier is unset.
	ErrNotConfigured = errors.New("cms not configured")
	// ErrInvalidSlug means the slug failed pattern or traversal checks.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrNotFound means the slug is absent from the eligible article set.
	ErrNotFound = errors.New("article not found")
	// ErrConversion means the document could not be converted at all.
	ErrConversion = errors.New("document conversion failed")
)
