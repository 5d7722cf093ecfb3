package domain

import "errors"

var (
	ErrInvalidTimeSpec   = errors.New("invalid time specification")
	ErrMalformedReminder = errors.New("malformed reminder")

	ErrUnknownTopic         = errors.New("unknown feature topic")
	ErrDuplicateFeature     = errors.New("feature already installed")
	ErrInvalidFeatureSource = errors.New("invalid feature source")
	ErrFeatureNotFound      = errors.New("feature not found")

	ErrUnknownSite    = errors.New("unknown site")
	ErrSecretNotFound = errors.New("secret not found")
	ErrInvalidSecret  = errors.New("invalid secret value")
)
