package entities

import "time"

type ContactVisibility string

const (
	ContactVisible ContactVisibility = "Yes"
	ContactHidden  ContactVisibility = "No"
)

type SortMode string

const (
	SortNone      SortMode = ""
	SortPriceAsc  SortMode = "priceAsc"
	SortPriceDesc SortMode = "priceDesc"
	SortNewest    SortMode = "newest"
)

// DescriptionLimit caps listing descriptions at record-build time.
const DescriptionLimit = 1500

// ImageAttachment is one persisted image of a listing. DataURI embeds the raw
// bytes as a base64 data URI so a record is self-contained.
type ImageAttachment struct {
	Name    string `json:"name"`
	DataURI string `json:"dataUrl"`
	IsCover bool   `json:"isCover"`
}

// Listing is a stored or drafted vehicle ad. Year, KMDriven and Price are
// free-form strings at rest; numeric coercion happens only at query and
// render time.
type Listing struct {
	ID           string            `json:"id"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Variant      string            `json:"variant"`
	Year         string            `json:"year"`
	KMDriven     string            `json:"kmDriven"`
	Price        string            `json:"price"`
	Fuel         string            `json:"fuel"`
	Transmission string            `json:"transmission"`
	SellerName   string            `json:"sellerName"`
	SellerPhone  string            `json:"sellerPhone"`
	City         string            `json:"city"`
	Locality     string            `json:"locality"`
	ShowContact  ContactVisibility `json:"showContact"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Images       []ImageAttachment `json:"images"`
	CreatedAt    string            `json:"createdAt"`
	IsDraft      bool              `json:"isDraft"`
}

// Timestamp parses CreatedAt; unparsable or absent values collapse to the
// epoch so ordering stays total.
func (l Listing) Timestamp() time.Time {
	ts, err := time.Parse(time.RFC3339, l.CreatedAt)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return ts
}

// Cover returns the attachment flagged as cover, falling back to the first
// image when no flag survived persistence.
func (l Listing) Cover() (ImageAttachment, bool) {
	for _, img := range l.Images {
		if img.IsCover {
			return img, true
		}
	}
	if len(l.Images) > 0 {
		return l.Images[0], true
	}
	return ImageAttachment{}, false
}

// ContactAllowed reports whether the seller phone may be shown on a detail
// surface.
func (l Listing) ContactAllowed() bool {
	return l.ShowContact == ContactVisible
}

// CloneListings deep-copies a slice of listings so query pipelines and stores
// never hand out aliased image slices.
func CloneListings(in []Listing) []Listing {
	out := make([]Listing, 0, len(in))
	for _, item := range in {
		out = append(out, CloneListing(item))
	}
	return out
}

func CloneListing(in Listing) Listing {
	out := in
	out.Images = append([]ImageAttachment(nil), in.Images...)
	return out
}
