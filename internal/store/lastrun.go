package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// lastRunDoc is the on-disk shape of the marker: the epoch value is
// authoritative, the readable rendering is for humans poking at the file.
type lastRunDoc struct {
	LastRun         int64  `json:"last_run"`
	LastRunReadable string `json:"last_run_readable"`
}

// LastRunStore persists the timestamp of the last successful fetch as a
// single flat JSON document. An absent file is the valid "never run" state.
type LastRunStore struct {
	path string
}

// NewLastRunStore returns a LastRunStore backed by the file at path.
func NewLastRunStore(path string) *LastRunStore {
	return &LastRunStore{path: path}
}

// Get returns the last-run timestamp and whether one is recorded.
// A missing, unreadable, or malformed file reads as "never run".
func (s *LastRunStore) Get() (time.Time, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return time.Time{}, false
	}
	var doc lastRunDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return time.Time{}, false
	}
	if doc.LastRun <= 0 {
		return time.Time{}, false
	}
	return time.Unix(doc.LastRun, 0), true
}

// Set records t as the last-run timestamp, replacing any previous marker.
func (s *LastRunStore) Set(t time.Time) error {
	doc := lastRunDoc{
		LastRun:         t.Unix(),
		LastRunReadable: t.Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal last-run marker: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write last-run marker: %w", err)
	}
	return nil
}

// Clear deletes the marker. Clearing an absent marker is not an error.
func (s *LastRunStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove last-run marker: %w", err)
	}
	return nil
}
