package listingengine

import (
	"context"
	"encoding/base64"
	"log/slog"

	"gaadi/contexts/marketplace/listing-engine/adapters/kvcatalog"
	"gaadi/contexts/marketplace/listing-engine/adapters/memory"
	"gaadi/contexts/marketplace/listing-engine/application/commands"
	"gaadi/contexts/marketplace/listing-engine/application/compose"
	"gaadi/contexts/marketplace/listing-engine/application/queries"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

// Module is the composition surface of the listing engine. UI adapters
// consume the use-cases and NewSession; Store is exposed for tests and
// inspection.
type Module struct {
	Browse     queries.BrowseCatalogUseCase
	GetListing queries.GetListingUseCase
	SaveDraft  commands.SaveDraftUseCase
	Publish    commands.PublishListingUseCase
	Store      *kvcatalog.Store

	deps Dependencies
}

type Dependencies struct {
	KV          ports.KeyValueStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Notifier    ports.Notifier
	ListingsKey string
	DraftsKey   string
	Logger      *slog.Logger
}

// NewModule wires the engine against explicit ports.
func NewModule(deps Dependencies) Module {
	store := kvcatalog.NewStore(deps.KV, deps.IDGenerator, deps.Clock, deps.Logger)
	if deps.ListingsKey != "" {
		store.ListingsKey = deps.ListingsKey
	}
	if deps.DraftsKey != "" {
		store.DraftsKey = deps.DraftsKey
	}

	return Module{
		Browse:     queries.BrowseCatalogUseCase{Catalog: store, Logger: deps.Logger},
		GetListing: queries.GetListingUseCase{Catalog: store, Logger: deps.Logger},
		SaveDraft:  commands.SaveDraftUseCase{Drafts: store, Logger: deps.Logger},
		Publish:    commands.PublishListingUseCase{Catalog: store, Logger: deps.Logger},
		Store:      store,
		deps:       deps,
	}
}

// NewInMemoryModule wires the engine against the in-memory medium. This is
// the test and no-storage-path bootstrap path.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	return NewModule(Dependencies{
		KV:          store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
}

// NewSession opens a compose surface in its hard-reset Composing state.
func (m Module) NewSession() *compose.Session {
	return compose.NewSession(compose.SessionDependencies{
		SaveDraft:   m.SaveDraft,
		Publish:     m.Publish,
		Notifier:    m.deps.Notifier,
		IDGenerator: m.deps.IDGenerator,
		Clock:       m.deps.Clock,
		Logger:      m.deps.Logger,
	})
}

// SeedSample publishes one sample listing when the catalog is empty so the
// browse surface is never blank on first run.
func (m Module) SeedSample(ctx context.Context) error {
	existing, err := m.Store.ListPublished(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = m.Store.Publish(ctx, sampleListing())
	return err
}

func sampleListing() entities.Listing {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="240">` +
		`<rect width="100%" height="100%" fill="#ddd"/>` +
		`<text x="50%" y="50%" alignment-baseline="middle" text-anchor="middle" font-size="24" fill="#666">Sample Car</text></svg>`
	return entities.Listing{
		Make:        "Hyundai",
		Model:       "Creta",
		Year:        "2019",
		Price:       "850000",
		KMDriven:    "42000",
		City:        "Ahmedabad",
		SellerName:  "Jay Motors",
		Category:    "cars",
		ShowContact: entities.ContactHidden,
		Images: []entities.ImageAttachment{{
			Name:    "sample",
			DataURI: "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)),
			IsCover: true,
		}},
	}
}
