// Package services implements the business logic over the MongoDB
// collections: partner directory queries, the request ledger, and the
// matching workflow that ties the two together.
//
// Sentinel errors live here so service methods return them consistently and
// controllers translate them into HTTP status codes.
package services

import "errors"

var (
	// ErrNotFound indicates that no document matches the given id.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when a path parameter is not a well-formed
	// ObjectID hex string.
	ErrInvalidID = errors.New("invalid id format")
)
