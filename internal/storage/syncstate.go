package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SyncState records when the remote exercise catalog was last fetched and
// what it contained, so startup can skip a refetch of unchanged data.
type SyncState struct {
	db *sql.DB
}

// OpenSyncState opens (or creates) the SQLite sync database at dir/sync.db.
func OpenSyncState(dir string) (*SyncState, error) {
	dbPath := filepath.Join(dir, "sync.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sync db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS catalog_sync (
		source     TEXT PRIMARY KEY,
		etag       TEXT NOT NULL DEFAULT '',
		hash       TEXT NOT NULL,
		fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sync table: %w", err)
	}

	return &SyncState{db: db}, nil
}

// LastFetch returns the recorded etag and content hash for a source.
// ok is false when the source has never been fetched.
func (s *SyncState) LastFetch(source string) (etag, hash string, fetchedAt time.Time, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT etag, hash, fetched_at FROM catalog_sync WHERE source = ?`, source)
	err = row.Scan(&etag, &hash, &fetchedAt)
	if err == sql.ErrNoRows {
		return "", "", time.Time{}, false, nil
	}
	if err != nil {
		return "", "", time.Time{}, false, err
	}
	return etag, hash, fetchedAt, true, nil
}

// MarkFetched records a successful catalog fetch.
func (s *SyncState) MarkFetched(source, etag, hash string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO catalog_sync (source, etag, hash, fetched_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		source, etag, hash,
	)
	return err
}

// Close closes the sync database.
func (s *SyncState) Close() error {
	return s.db.Close()
}

// HashBytes computes the SHA-256 hash of a payload as lowercase hex.
func HashBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
