package entity

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrSequenceNotFound = errors.New("sequence not found")
	ErrMissingRecipient = errors.New("missing recipient")
	ErrNoSteps          = errors.New("sequence needs at least one step")
	ErrTooManySteps     = errors.New("sequence exceeds the step limit")
)
