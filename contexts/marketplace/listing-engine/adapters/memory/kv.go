package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gaadi/contexts/marketplace/listing-engine/ports"
)

// Store is the in-memory key-value medium used by tests and by runs without
// a storage path configured. It doubles as clock and id source the way the
// other adapters pair those concerns with their medium.
type Store struct {
	mu       sync.RWMutex
	values   map[string]string
	sequence uint64
}

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("mem_%d", n), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.KeyValueStore = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
