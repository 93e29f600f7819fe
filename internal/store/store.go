// Package store persists scanned receipts. Three implementations are
// provided: an in-memory store for tests and local development, a flat-file
// JSON store matching the single-user deployment model, and a bbolt store
// for installs that want transactional durability without a database server.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/receiptlens/backend/internal/extraction"
)

// ErrNotFound is returned when a scan record does not exist.
var ErrNotFound = errors.New("store: scan not found")

// ScanRecord is a persisted receipt scan.
type ScanRecord struct {
	ID        string             `json:"id"`
	Merchant  string             `json:"merchant"`
	CreatedAt time.Time          `json:"created_at"`
	Receipt   extraction.Receipt `json:"receipt"`
}

// Store defines the interface for scan persistence used by the service
type Store interface {
	// SaveScan persists a scan record. A missing ID is assigned.
	SaveScan(ctx context.Context, record *ScanRecord) error

	// GetScan retrieves a scan by ID. Returns ErrNotFound if absent.
	GetScan(ctx context.Context, id string) (*ScanRecord, error)

	// ListScans returns all scans, newest first.
	ListScans(ctx context.Context) ([]*ScanRecord, error)

	// DeleteScan removes a scan. Returns ErrNotFound if absent.
	DeleteScan(ctx context.Context, id string) error

	// Close releases any underlying resources.
	Close() error
}
