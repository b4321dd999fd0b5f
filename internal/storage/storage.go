package storage

import (
	"fmt"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/memory"
	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
	"github.com/carson-networks/ledger-server/internal/storage/sqlitestore"
)

// Storage holds the configured record map backend.
type Storage struct {
	Records recordmap.RecordMap
}

// NewStorage builds the backend selected by the configuration.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.DataBackend {
	case config.BackendMemory:
		return &Storage{Records: memory.NewStore()}, nil
	case config.BackendSQLite:
		store, err := sqlitestore.NewStore(env.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return &Storage{Records: store}, nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", env.DataBackend)
	}
}

// Close closes the underlying backend.
func (s *Storage) Close() error {
	return s.Records.Close()
}
