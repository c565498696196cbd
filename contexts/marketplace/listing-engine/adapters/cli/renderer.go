package cli

import (
	"fmt"
	"io"
	"strings"

	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/contexts/marketplace/listing-engine/domain/services"
)

// Renderer writes the browse grid and the detail view as plain text. It is
// the presentation callback pair of the engine; the result count is always
// derived from the slice length.
type Renderer struct {
	Out io.Writer
}

func (r Renderer) RenderGrid(view []entities.Listing) {
	fmt.Fprintf(r.Out, "%d results\n", len(view))
	if len(view) == 0 {
		fmt.Fprintln(r.Out, "No results found. Try adjusting your search or filters.")
		return
	}
	for _, item := range view {
		fmt.Fprintf(r.Out, "%s  %s  %s %s %s  %s%s\n",
			item.ID,
			priceLabel(item.Price),
			item.Make, item.Model, item.Year,
			item.City,
			kmLabel(item.KMDriven),
		)
	}
}

func (r Renderer) RenderDetail(item entities.Listing) {
	title := strings.TrimSpace(item.Make + " " + item.Model)
	fmt.Fprintln(r.Out, title)
	fmt.Fprintln(r.Out, priceLabel(item.Price))
	fmt.Fprintf(r.Out, "%s • %s%s\n", item.City, item.Year, kmLabel(item.KMDriven))

	fmt.Fprintf(r.Out, "Seller: %s\n", item.SellerName)
	if item.ContactAllowed() {
		fmt.Fprintf(r.Out, "Phone: %s\n", item.SellerPhone)
	}

	if len(item.Images) == 0 {
		fmt.Fprintln(r.Out, "No images")
	} else {
		cover, _ := item.Cover()
		fmt.Fprintf(r.Out, "%d image(s), cover: %s\n", len(item.Images), cover.Name)
	}

	if item.Description != "" {
		fmt.Fprintln(r.Out, item.Description)
	}
}

func (r Renderer) RenderDrafts(drafts []entities.Listing) {
	fmt.Fprintf(r.Out, "%d draft(s)\n", len(drafts))
	for _, item := range drafts {
		fmt.Fprintf(r.Out, "%s  %s %s  %s\n", item.ID, item.Make, item.Model, priceLabel(item.Price))
	}
}

// priceLabel shows the coerced price, or an em dash when the stored value is
// not numeric. Same NumericOrZero the filters and sorts use.
func priceLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "₹ —"
	}
	value := services.NumericOrZero(raw)
	if value == 0 && strings.TrimSpace(raw) != "0" {
		return "₹ —"
	}
	return fmt.Sprintf("₹ %.0f", value)
}

func kmLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return " • " + raw + " km"
}
