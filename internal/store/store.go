// Package store holds the per-collection stores. Every store keeps its
// collection in memory and mirrors it to the durable record store with the
// same protocol: apply the mutation in memory, persist the whole collection,
// and reverse exactly the in-memory mutation if persistence fails.
package store

import (
	"errors"

	"github.com/claude/vincera/internal/storage"
)

// RecordStore is the persistence surface the stores depend on. *storage.Store
// satisfies it; tests substitute a failing implementation to exercise
// rollback.
type RecordStore interface {
	Read(rec storage.Record, v any) error
	Write(rec storage.Record, v any) error
}

var _ RecordStore = (*storage.Store)(nil)

var (
	// ErrNotFound is returned when an id is not in the owning collection.
	ErrNotFound = errors.New("record not found")
	// ErrImmutable is returned for delete/edit of a built-in or catalog entry.
	ErrImmutable = errors.New("built-in entries cannot be modified")
	// ErrExistingWorkout is returned when starting a workout while one is active.
	ErrExistingWorkout = errors.New("a workout is already in progress")
	// ErrInvalidWorkout is returned when finishing a workout with unfilled sets.
	ErrInvalidWorkout = errors.New("workout has unfilled sets")
	// ErrNoActiveWorkout is returned when finishing or cancelling while idle.
	ErrNoActiveWorkout = errors.New("no workout in progress")
)
