package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Record is a logical collection name. One record = one JSON file holding the
// whole collection; every write rewrites the file.
type Record string

const (
	RecSplits          Record = "splits.json"
	RecDays            Record = "days.json"
	RecWorkouts        Record = "workouts.json"
	RecSplitMeta       Record = "split-meta.json"
	RecWorkoutMeta     Record = "workout-meta.json"
	RecExercisesRemote Record = "exercises-remote.json"
	RecExercisesMut    Record = "exercises-mutable.json"
	RecProducts        Record = "products.json"
)

var knownRecords = map[Record]bool{
	RecSplits:          true,
	RecDays:            true,
	RecWorkouts:        true,
	RecSplitMeta:       true,
	RecWorkoutMeta:     true,
	RecExercisesRemote: true,
	RecExercisesMut:    true,
	RecProducts:        true,
}

// Storage error taxonomy. Callers that treat a missing or unreadable
// collection as empty match on ErrRead/ErrDecode.
var (
	ErrInvalidRecord = errors.New("invalid record name")
	ErrRead          = errors.New("failed to read file")
	ErrDecode        = errors.New("failed to decode data")
	ErrEncode        = errors.New("failed to encode data")
	ErrWrite         = errors.New("failed to write file")
)

// Store maps record names to JSON files in a single data directory. There is
// no locking or versioning: the stores above it serialize access, and last
// writer wins.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(rec Record) (string, error) {
	if !knownRecords[rec] {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecord, rec)
	}
	return filepath.Join(s.dir, string(rec)), nil
}

// Read decodes the record's full contents into v.
func (s *Store) Read(rec Record, v any) error {
	path, err := s.path(rec)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRead, rec, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, rec, err)
	}
	return nil
}

// Write encodes v and overwrites the record's file with it.
func (s *Store) Write(rec Record, v any) error {
	path, err := s.path(rec)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, rec, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, rec, err)
	}
	return nil
}
