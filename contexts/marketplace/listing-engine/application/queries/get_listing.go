package queries

import (
	"context"
	"log/slog"
	"strings"

	application "gaadi/contexts/marketplace/listing-engine/application"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

type GetListingUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

// Execute looks a published listing up by id for the detail surface.
func (u GetListingUseCase) Execute(ctx context.Context, listingID string) (entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(listingID) == "" {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}

	all, err := u.Catalog.ListPublished(ctx)
	if err != nil {
		return entities.Listing{}, err
	}
	for _, item := range all {
		if item.ID == listingID {
			return item, nil
		}
	}

	logger.Warn("listing lookup missed",
		"event", "get_listing_missed",
		"module", "marketplace/listing-engine",
		"layer", "application",
		"listing_id", listingID,
	)
	return entities.Listing{}, domainerrors.ErrListingNotFound
}
