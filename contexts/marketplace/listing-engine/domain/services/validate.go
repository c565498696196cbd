package services

import (
	"strings"

	"gaadi/contexts/marketplace/listing-engine/domain/entities"
)

// ValidationResult reports what blocks a publish. The image requirement is
// kept apart from MissingFields because it is surfaced through its own
// user-facing message.
type ValidationResult struct {
	MissingFields []string
	ImageRequired bool
}

func (r ValidationResult) OK() bool {
	return len(r.MissingFields) == 0 && !r.ImageRequired
}

// ValidateListing enforces the publish gate. Pure: same input, same result.
func ValidateListing(listing entities.Listing, imageCount int) ValidationResult {
	required := []struct {
		name  string
		value string
	}{
		{"make", listing.Make},
		{"model", listing.Model},
		{"year", listing.Year},
		{"kmDriven", listing.KMDriven},
		{"price", listing.Price},
		{"sellerName", listing.SellerName},
		{"sellerPhone", listing.SellerPhone},
	}

	var result ValidationResult
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			result.MissingFields = append(result.MissingFields, field.name)
		}
	}
	result.ImageRequired = imageCount < 1
	return result
}
