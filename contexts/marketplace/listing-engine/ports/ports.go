package ports

import (
	"context"
	"time"

	"gaadi/contexts/marketplace/listing-engine/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// KeyValueStore is the persistent medium. It stores opaque strings under
// string keys; the engine keeps each catalog partition under one key and
// rewrites it in full on every mutation.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Notifier is the fire-and-forget user notification sink.
type Notifier interface {
	Notify(message string)
}

// ImageSource is one offered file, already normalized from whatever UI event
// produced it (file picker, drop). Read loads the raw bytes and is the only
// blocking boundary in the compose flow.
type ImageSource interface {
	Name() string
	ContentType() string
	Read(ctx context.Context) ([]byte, error)
}

type CatalogRepository interface {
	ListPublished(ctx context.Context) ([]entities.Listing, error)
	Publish(ctx context.Context, listing entities.Listing) (entities.Listing, error)
}

type DraftRepository interface {
	ListDrafts(ctx context.Context) ([]entities.Listing, error)
	UpsertDraft(ctx context.Context, listing entities.Listing) error
}
