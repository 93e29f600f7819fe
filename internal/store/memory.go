package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu    sync.RWMutex
	scans map[string]*ScanRecord
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scans: make(map[string]*ScanRecord),
	}
}

func (m *MemoryStore) SaveScan(ctx context.Context, record *ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	copied := *record
	m.scans[record.ID] = &copied
	return nil
}

func (m *MemoryStore) GetScan(ctx context.Context, id string) (*ScanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.scans[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (m *MemoryStore) ListScans(ctx context.Context) ([]*ScanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*ScanRecord, 0, len(m.scans))
	for _, record := range m.scans {
		copied := *record
		records = append(records, &copied)
	}
	sortScans(records)
	return records, nil
}

func (m *MemoryStore) DeleteScan(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.scans[id]; !ok {
		return ErrNotFound
	}
	delete(m.scans, id)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// sortScans orders records newest first, with ID as a tiebreaker so listings
// are stable when timestamps collide.
func sortScans(records []*ScanRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
