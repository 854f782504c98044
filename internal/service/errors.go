package service

import "errors"

var (
	// ErrEmptyInput indicates a blank user input; nothing was persisted and
	// no AI call was made.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInvalidInput indicates a habit or date that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
