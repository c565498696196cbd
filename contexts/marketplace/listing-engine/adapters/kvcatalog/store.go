package kvcatalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

const (
	DefaultListingsKey = "listings"
	DefaultDraftsKey   = "drafts"
)

// Store keeps the published and draft partitions as JSON arrays under two
// keys of the key-value medium. Every mutation rewrites its partition in
// full; the single-threaded event model means no two writers interleave.
type Store struct {
	kv     ports.KeyValueStore
	ids    ports.IDGenerator
	clock  ports.Clock
	logger *slog.Logger

	ListingsKey string
	DraftsKey   string
}

func NewStore(kv ports.KeyValueStore, ids ports.IDGenerator, clock ports.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:          kv,
		ids:         ids,
		clock:       clock,
		logger:      logger,
		ListingsKey: DefaultListingsKey,
		DraftsKey:   DefaultDraftsKey,
	}
}

func (s *Store) ListPublished(ctx context.Context) ([]entities.Listing, error) {
	return s.loadPartition(ctx, s.ListingsKey)
}

// Publish assigns the published identity and prepends, so the partition
// stays most-recent-first without ever sorting at rest.
func (s *Store) Publish(ctx context.Context, listing entities.Listing) (entities.Listing, error) {
	id, err := s.ids.NewID(ctx)
	if err != nil {
		return entities.Listing{}, err
	}
	listing = entities.CloneListing(listing)
	listing.ID = "ad_" + id
	listing.CreatedAt = s.clock.Now().UTC().Format(time.RFC3339)
	listing.IsDraft = false

	all, err := s.loadPartition(ctx, s.ListingsKey)
	if err != nil {
		return entities.Listing{}, err
	}
	all = append([]entities.Listing{listing}, all...)
	if err := s.savePartition(ctx, s.ListingsKey, all); err != nil {
		return entities.Listing{}, err
	}
	return listing, nil
}

func (s *Store) ListDrafts(ctx context.Context) ([]entities.Listing, error) {
	return s.loadPartition(ctx, s.DraftsKey)
}

// UpsertDraft replaces an existing draft in place, preserving its position,
// or appends a new one.
func (s *Store) UpsertDraft(ctx context.Context, listing entities.Listing) error {
	listing = entities.CloneListing(listing)
	listing.IsDraft = true

	drafts, err := s.loadPartition(ctx, s.DraftsKey)
	if err != nil {
		return err
	}
	replaced := false
	for i, draft := range drafts {
		if draft.ID == listing.ID {
			drafts[i] = listing
			replaced = true
			break
		}
	}
	if !replaced {
		drafts = append(drafts, listing)
	}
	return s.savePartition(ctx, s.DraftsKey, drafts)
}

// loadPartition treats an absent key as an empty partition and an
// unparsable payload as corruption that degrades to empty. Neither is an
// error to the caller.
func (s *Store) loadPartition(ctx context.Context, key string) ([]entities.Listing, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []entities.Listing{}, nil
	}
	var items []entities.Listing
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("partition payload unparsable, degrading to empty",
			"event", "catalog_partition_corrupt",
			"module", "marketplace/listing-engine",
			"layer", "adapter",
			"partition", key,
			"error", err.Error(),
		)
		return []entities.Listing{}, nil
	}
	return items, nil
}

func (s *Store) savePartition(ctx context.Context, key string, items []entities.Listing) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(payload))
}

var _ ports.CatalogRepository = (*Store)(nil)
var _ ports.DraftRepository = (*Store)(nil)
