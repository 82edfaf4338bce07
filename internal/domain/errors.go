package domain

import "errors"

// ErrInvalidRecord marks a container record that violates a dataset
// invariant. Invalid records are rejected at validation and excluded
// from every aggregate.
var ErrInvalidRecord = errors.New("invalid container record")

// ErrUnknownContainer marks a lookup for an ID absent from the dataset.
var ErrUnknownContainer = errors.New("unknown container id")
