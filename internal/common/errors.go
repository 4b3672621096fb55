// Package common defines sentinel errors shared across toolrent packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Catalog lookups.
	ErrUnknownEntity = errors.New("unknown entity")

	// Export failures.
	ErrOutput = errors.New("cannot write output")
)
