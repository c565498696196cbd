package commands

import (
	"context"
	"log/slog"

	application "gaadi/contexts/marketplace/listing-engine/application"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/contexts/marketplace/listing-engine/domain/services"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

type PublishListingResult struct {
	Listing    entities.Listing
	Validation services.ValidationResult
}

type PublishListingUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

// Execute gates the record on validation and, on success, hands it to the
// catalog which assigns the published id and timestamp. A failed validation
// returns ErrValidationFailed with the result populated and touches nothing.
func (u PublishListingUseCase) Execute(ctx context.Context, listing entities.Listing) (PublishListingResult, error) {
	logger := application.ResolveLogger(u.Logger)

	validation := services.ValidateListing(listing, len(listing.Images))
	if !validation.OK() {
		logger.Info("publish rejected by validation",
			"event", "publish_listing_rejected",
			"module", "marketplace/listing-engine",
			"layer", "application",
			"missing_fields", validation.MissingFields,
			"image_required", validation.ImageRequired,
		)
		return PublishListingResult{Validation: validation}, domainerrors.ErrValidationFailed
	}

	listing.IsDraft = false
	published, err := u.Catalog.Publish(ctx, listing)
	if err != nil {
		logger.Error("publish persistence failed",
			"event", "publish_listing_failed",
			"module", "marketplace/listing-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return PublishListingResult{Validation: validation}, err
	}

	logger.Info("listing published",
		"event", "listing_published",
		"module", "marketplace/listing-engine",
		"layer", "application",
		"listing_id", published.ID,
		"images", len(published.Images),
	)
	return PublishListingResult{Listing: published, Validation: validation}, nil
}
