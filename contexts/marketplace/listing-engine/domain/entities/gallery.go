package entities

// MaxGalleryImages caps how many images one listing may carry.
const MaxGalleryImages = 20

// GalleryImage is one image held by the compose surface. The ID is internal
// to the session and stripped on Snapshot.
type GalleryImage struct {
	ID      string
	Name    string
	DataURI string
	IsCover bool
}

// Gallery is the ordered image set of the listing being composed. Display
// order is slice order. A non-empty gallery always has exactly one cover
// after any mutation returns.
type Gallery struct {
	images []GalleryImage
	cap    int
}

func NewGallery() *Gallery {
	return &Gallery{cap: MaxGalleryImages}
}

func (g *Gallery) Len() int { return len(g.images) }

// Remaining reports how many more images fit before the cap.
func (g *Gallery) Remaining() int {
	if left := g.cap - len(g.images); left > 0 {
		return left
	}
	return 0
}

// Add appends already-read images in order, silently truncating the batch at
// capacity. The first image added to an empty gallery becomes cover.
func (g *Gallery) Add(images ...GalleryImage) int {
	added := 0
	for _, img := range images {
		if len(g.images) >= g.cap {
			break
		}
		img.IsCover = len(g.images) == 0
		g.images = append(g.images, img)
		added++
	}
	return added
}

// SetCover flags the given image as the single cover. Unknown ids leave the
// gallery unchanged.
func (g *Gallery) SetCover(id string) {
	if g.indexOf(id) == -1 {
		return
	}
	for i := range g.images {
		g.images[i].IsCover = g.images[i].ID == id
	}
}

// Remove drops the image. If the cover was removed the new first image is
// promoted.
func (g *Gallery) Remove(id string) {
	idx := g.indexOf(id)
	if idx == -1 {
		return
	}
	g.images = append(g.images[:idx], g.images[idx+1:]...)
	if len(g.images) == 0 {
		return
	}
	for _, img := range g.images {
		if img.IsCover {
			return
		}
	}
	g.images[0].IsCover = true
}

// Reorder moves movedID into the slot currently held by targetID, shifting
// the rest. No-op when either id is absent.
func (g *Gallery) Reorder(movedID, targetID string) {
	src := g.indexOf(movedID)
	dst := g.indexOf(targetID)
	if src == -1 || dst == -1 {
		return
	}
	moved := g.images[src]
	g.images = append(g.images[:src], g.images[src+1:]...)
	g.images = append(g.images[:dst], append([]GalleryImage{moved}, g.images[dst:]...)...)
}

// Snapshot strips internal ids for persistence.
func (g *Gallery) Snapshot() []ImageAttachment {
	out := make([]ImageAttachment, 0, len(g.images))
	for _, img := range g.images {
		out = append(out, ImageAttachment{
			Name:    img.Name,
			DataURI: img.DataURI,
			IsCover: img.IsCover,
		})
	}
	return out
}

// Images returns a copy of the current display order.
func (g *Gallery) Images() []GalleryImage {
	return append([]GalleryImage(nil), g.images...)
}

func (g *Gallery) indexOf(id string) int {
	for i, img := range g.images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
