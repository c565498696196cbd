package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	application "gaadi/contexts/marketplace/listing-engine/application"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/contexts/marketplace/listing-engine/domain/services"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

// BrowseCatalogQuery carries the browse surface inputs verbatim. Price
// bounds stay free-form strings and are coerced inside the pipeline.
type BrowseCatalogQuery struct {
	Category string
	Search   string
	City     string
	MinPrice string
	MaxPrice string
	Sort     entities.SortMode
}

type BrowseCatalogUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

// Execute snapshots the published partition and runs the filter stages in
// fixed order, sorting last. It never mutates the snapshot. An empty result
// is the zero-results signal; no separate flag exists.
func (u BrowseCatalogUseCase) Execute(ctx context.Context, query BrowseCatalogQuery) ([]entities.Listing, error) {
	logger := application.ResolveLogger(u.Logger)

	all, err := u.Catalog.ListPublished(ctx)
	if err != nil {
		logger.Error("browse catalog snapshot failed",
			"event", "browse_catalog_snapshot_failed",
			"module", "marketplace/listing-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}

	filtered := Pipeline(all, query)

	logger.Debug("browse catalog completed",
		"event", "browse_catalog_completed",
		"module", "marketplace/listing-engine",
		"layer", "application",
		"total", len(all),
		"results", len(filtered),
	)
	return filtered, nil
}

// Pipeline is the pure query stage chain over an already-loaded snapshot.
// Exposed so previews and tests can run it without a repository.
func Pipeline(all []entities.Listing, query BrowseCatalogQuery) []entities.Listing {
	filtered := entities.CloneListings(all)

	category := strings.ToLower(strings.TrimSpace(query.Category))
	if category != "" && category != "all" {
		filtered = keep(filtered, func(item entities.Listing) bool {
			return strings.Contains(strings.ToLower(item.Category), category)
		})
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	if search != "" {
		filtered = keep(filtered, func(item entities.Listing) bool {
			return strings.Contains(strings.ToLower(item.Make), search) ||
				strings.Contains(strings.ToLower(item.Model), search) ||
				strings.Contains(strings.ToLower(item.City), search) ||
				strings.Contains(strings.ToLower(item.Description), search)
		})
	}

	minPrice := services.NumericOrZero(query.MinPrice)
	maxPrice := services.NumericOrUnbounded(query.MaxPrice)
	filtered = keep(filtered, func(item entities.Listing) bool {
		price := services.NumericOrZero(item.Price)
		return price >= minPrice && price <= maxPrice
	})

	city := strings.ToLower(strings.TrimSpace(query.City))
	if city != "" {
		filtered = keep(filtered, func(item entities.Listing) bool {
			return strings.Contains(strings.ToLower(item.City), city)
		})
	}

	switch query.Sort {
	case entities.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return services.NumericOrZero(filtered[i].Price) < services.NumericOrZero(filtered[j].Price)
		})
	case entities.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return services.NumericOrZero(filtered[i].Price) > services.NumericOrZero(filtered[j].Price)
		})
	case entities.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Timestamp().After(filtered[j].Timestamp())
		})
	}

	return filtered
}

func keep(items []entities.Listing, predicate func(entities.Listing) bool) []entities.Listing {
	out := items[:0]
	for _, item := range items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}
