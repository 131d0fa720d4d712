package util

import "errors"

var (
	ErrFormNotFound       = errors.New("survey form not found")
	ErrFormClosed         = errors.New("survey form already submitted")
	ErrSubmissionInFlight = errors.New("survey submission already in progress")
	ErrUnknownField       = errors.New("unknown survey field")
	ErrUnknownFeature     = errors.New("unknown helpful AI feature option")
)
