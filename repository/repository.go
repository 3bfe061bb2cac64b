package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced document is absent.
	ErrNotFound = errors.New("document not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// finds less stock than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
)
