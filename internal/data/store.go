package data

import (
	"os"
	"sync"
	"time"

	"sales-insights/internal/insights"
	"sales-insights/internal/metrics"

	"github.com/google/uuid"
)

// Dataset is a loaded-and-aggregated order source held for repeated
// filter/simulate calls. The summary slice is immutable once stored and
// may be read concurrently.
type Dataset struct {
	ID       string
	Path     string
	Rows     int // source record count
	Summary  []insights.SummaryRow
	Channels []string
	Regions  []string
	LoadedAt time.Time
}

// Store is an in-memory dataset registry with TTL eviction. Entries are
// keyed by UUID handles returned to the client at load time.
type Store struct {
	mu    sync.RWMutex
	items map[string]*storeEntry
	ttl   time.Duration
}

type storeEntry struct {
	dataset   *Dataset
	expiresAt time.Time
}

// NewStore creates a store with the given TTL and starts its cleanup
// loop. A non-positive ttl defaults to one hour.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &Store{
		items: make(map[string]*storeEntry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// NewStoreFromEnv creates a store with TTL taken from DATASET_TTL
// (time.ParseDuration syntax) when set.
func NewStoreFromEnv() *Store {
	ttl := time.Hour
	if v := os.Getenv("DATASET_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}
	return NewStore(ttl)
}

// Put registers a dataset and returns its handle.
func (s *Store) Put(ds *Dataset) string {
	id := uuid.NewString()
	ds.ID = id
	ds.LoadedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = &storeEntry{
		dataset:   ds,
		expiresAt: ds.LoadedAt.Add(s.ttl),
	}
	metrics.StoredDatasets.Set(float64(len(s.items)))
	return id
}

// Get returns the dataset for a handle, if present and not expired.
func (s *Store) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.dataset, true
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, e := range s.items {
			if now.After(e.expiresAt) {
				delete(s.items, id)
			}
		}
		metrics.StoredDatasets.Set(float64(len(s.items)))
		s.mu.Unlock()
	}
}
