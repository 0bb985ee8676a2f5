package domain

import "errors"

var (
	ErrNoFile        = errors.New("no file provided")
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrMissingParams = errors.New("missing required parameters")
	ErrEmptyText     = errors.New("empty text")
	ErrBadScript     = errors.New("invalid script file")
)
