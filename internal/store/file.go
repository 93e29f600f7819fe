package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileStore implements Store on a single JSON file. The whole history is
// loaded at open and rewritten on every mutation, which is fine for the
// single-user scan volumes this serves.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	scans map[string]*ScanRecord
}

// NewFileStore opens (or creates) a JSON-backed store at path. A missing or
// corrupt file starts an empty history rather than failing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		scans: make(map[string]*ScanRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	var records []*ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt history is not worth refusing to start over.
		return s, nil
	}
	for _, record := range records {
		s.scans[record.ID] = record
	}
	return s, nil
}

func (s *FileStore) SaveScan(ctx context.Context, record *ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	copied := *record
	s.scans[record.ID] = &copied
	return s.flush()
}

func (s *FileStore) GetScan(ctx context.Context, id string) (*ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.scans[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *FileStore) ListScans(ctx context.Context) ([]*ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*ScanRecord, 0, len(s.scans))
	for _, record := range s.scans {
		copied := *record
		records = append(records, &copied)
	}
	sortScans(records)
	return records, nil
}

func (s *FileStore) DeleteScan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scans[id]; !ok {
		return ErrNotFound
	}
	delete(s.scans, id)
	return s.flush()
}

func (s *FileStore) Close() error {
	return nil
}

// flush rewrites the backing file atomically. Caller must hold the lock.
func (s *FileStore) flush() error {
	records := make([]*ScanRecord, 0, len(s.scans))
	for _, record := range s.scans {
		records = append(records, record)
	}
	sortScans(records)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
