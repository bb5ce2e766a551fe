package catalog

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/claude/vincera/internal/models"
	"github.com/claude/vincera/internal/storage"
)

// bundledFile is the catalog filename inside the embedded data FS.
const bundledFile = "exercises.json"

// ErrEmptyCatalog means every source in the fallback chain came up empty.
var ErrEmptyCatalog = errors.New("exercise catalog unavailable")

// RecordStore is the slice of the durable store the loader needs.
type RecordStore interface {
	Read(rec storage.Record, v any) error
	Write(rec storage.Record, v any) error
}

// Loader resolves the catalog through remote -> cached -> bundled.
type Loader struct {
	client  *Client
	rs      RecordStore
	bundled fs.FS
	sync    *storage.SyncState
	log     *slog.Logger
}

// NewLoader creates a Loader. client and sync may be nil (no remote source,
// no sync bookkeeping); bundled must contain exercises.json.
func NewLoader(client *Client, rs RecordStore, bundled fs.FS, sync *storage.SyncState, log *slog.Logger) *Loader {
	return &Loader{client: client, rs: rs, bundled: bundled, sync: sync, log: log}
}

// Load returns the catalog from the first non-empty source. Remote failures
// are absorbed: they only demote the load to the next source. An empty result
// from every source is an error; the app cannot run without a catalog.
func (l *Loader) Load(ctx context.Context) ([]models.ListExercise, error) {
	if exercises := l.loadRemote(ctx); len(exercises) > 0 {
		return exercises, nil
	}

	var cached []models.ListExercise
	if err := l.rs.Read(storage.RecExercisesRemote, &cached); err == nil && len(cached) > 0 {
		l.log.Info("catalog loaded from cache", "count", len(cached))
		return cached, nil
	}

	data, err := fs.ReadFile(l.bundled, bundledFile)
	if err != nil {
		return nil, ErrEmptyCatalog
	}
	bundled, rejected, err := Parse(data)
	if err != nil || len(bundled) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rejected != nil {
		l.log.Warn("bundled catalog has invalid records", "error", rejected)
	}
	l.log.Info("catalog loaded from bundle", "count", len(bundled))
	return bundled, nil
}

func (l *Loader) loadRemote(ctx context.Context) []models.ListExercise {
	if l.client == nil {
		return nil
	}
	exercises, body, etag, rejected, err := l.client.Fetch(ctx)
	if err != nil {
		l.log.Warn("remote catalog fetch failed", "error", err)
		return nil
	}
	if rejected != nil {
		l.log.Warn("remote catalog records rejected", "error", rejected)
	}
	if len(exercises) == 0 {
		return nil
	}

	// Refresh the cache and sync bookkeeping; both are best effort.
	if err := l.rs.Write(storage.RecExercisesRemote, exercises); err != nil {
		l.log.Warn("caching remote catalog failed", "error", err)
	}
	if l.sync != nil {
		if err := l.sync.MarkFetched(l.client.url, etag, storage.HashBytes(body)); err != nil {
			l.log.Warn("recording catalog sync state failed", "error", err)
		}
	}
	l.log.Info("catalog loaded from remote", "count", len(exercises))
	return exercises
}
