package domain

import "errors"

var (
	// ErrShoppingAPIFailure is returned when the shopping-search API request fails
	ErrShoppingAPIFailure = errors.New("shopping search API request failed")

	// ErrSummaryFailure is returned when the language-model summary request fails
	ErrSummaryFailure = errors.New("summary generation failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSessionNotFound is returned when a session ID is unknown
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
