// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result of [ErrorClassificator.Classify].
// Repositories translate [UniqueViolation] into domain errors; the other
// classes are only reported in logs.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors, errors that do not come from
	// the driver, and driver errors without a more specific class.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique index rejected the write.
	UniqueViolation

	// Transient means the operation may succeed if attempted again
	// (lost connection, deadlock, busy database).
	Transient
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
