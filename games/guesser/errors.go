/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package guesser

import "errors"

var (
	// ErrInvalidInput is returned when a caller records an answer that the
	// belief state cannot accept. Nothing is mutated when it is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when a session operation is called in the
	// wrong lifecycle state.
	ErrInvalidState = errors.New("invalid session state")

	// ErrInvalidData is returned by the loaders for malformed reference data.
	ErrInvalidData = errors.New("invalid data")

	ErrInvalidConfig = errors.New("invalid config")
)
