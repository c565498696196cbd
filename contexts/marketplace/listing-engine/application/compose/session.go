package compose

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "gaadi/contexts/marketplace/listing-engine/application"
	"gaadi/contexts/marketplace/listing-engine/application/commands"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

// DraftSaver and ListingPublisher are the slices of the command layer the
// session drives. Declared here so tests can swap in fakes.
type DraftSaver interface {
	Execute(ctx context.Context, draft entities.Listing) error
}

type ListingPublisher interface {
	Execute(ctx context.Context, listing entities.Listing) (commands.PublishListingResult, error)
}

// AttachResult reports how an offered batch landed. Skipped counts images
// dropped by the capacity cap; the cap itself raises no error.
type AttachResult struct {
	Added   int
	Skipped int
}

// PublishOutcome is what the compose surface needs after a publish attempt:
// either the published record plus the signal to return to browse, or the
// fields to highlight.
type PublishOutcome struct {
	Published     bool
	Listing       entities.Listing
	MissingFields []string
	ImageRequired bool
}

type SessionDependencies struct {
	SaveDraft   DraftSaver
	Publish     ListingPublisher
	Notifier    ports.Notifier
	IDGenerator ports.IDGenerator
	Clock       ports.Clock
	Logger      *slog.Logger
}

// Session is one compose surface lifetime. It owns the in-progress gallery
// and field values; nothing here is process-global. Opening the surface
// again means a fresh Session (or Reset), never a merge with prior state.
type Session struct {
	deps    SessionDependencies
	fields  entities.Listing
	gallery *entities.Gallery
	draftID string
}

func NewSession(deps SessionDependencies) *Session {
	s := &Session{deps: deps}
	s.Reset()
	return s
}

// Reset re-enters Composing: empty gallery, cleared fields, no draft id
// carried over. This is a hard reset.
func (s *Session) Reset() {
	s.fields = entities.Listing{}
	s.gallery = entities.NewGallery()
	s.draftID = ""
}

// SetFields replaces the form values. Identity, images and lifecycle flags
// are session-owned and ignored on input; descriptions are capped.
func (s *Session) SetFields(fields entities.Listing) {
	fields.ID = ""
	fields.Images = nil
	fields.CreatedAt = ""
	fields.IsDraft = false
	if runes := []rune(fields.Description); len(runes) > entities.DescriptionLimit {
		fields.Description = string(runes[:entities.DescriptionLimit])
	}
	s.fields = fields
}

// AttachImages consumes one offered batch. Sources whose declared media type
// is not image/* are dropped; a batch with no images at all is rejected as a
// whole with a notification. Accepted sources are read one at a time so the
// resulting order is deterministic; a failed read aborts the remainder of
// the batch but keeps everything already added.
func (s *Session) AttachImages(ctx context.Context, sources []ports.ImageSource) (AttachResult, error) {
	logger := application.ResolveLogger(s.deps.Logger)

	images := make([]ports.ImageSource, 0, len(sources))
	for _, src := range sources {
		if strings.HasPrefix(src.ContentType(), "image/") {
			images = append(images, src)
		}
	}
	if len(images) == 0 {
		s.notify("Select image files only")
		return AttachResult{}, domainerrors.ErrNoImageSources
	}

	space := s.gallery.Remaining()
	toAdd := images
	if len(toAdd) > space {
		toAdd = toAdd[:space]
	}
	result := AttachResult{Skipped: len(images) - len(toAdd)}

	for _, src := range toAdd {
		data, err := src.Read(ctx)
		if err != nil {
			logger.Warn("image read aborted batch",
				"event", "attach_images_read_failed",
				"module", "marketplace/listing-engine",
				"layer", "application",
				"file", src.Name(),
				"added_before_failure", result.Added,
				"error", err.Error(),
			)
			return result, fmt.Errorf("%w: %s: %v", domainerrors.ErrImageReadFailed, src.Name(), err)
		}
		id, err := s.deps.IDGenerator.NewID(ctx)
		if err != nil {
			return result, err
		}
		s.gallery.Add(entities.GalleryImage{
			ID:      id,
			Name:    src.Name(),
			DataURI: dataURI(src.ContentType(), data),
		})
		result.Added++
	}

	logger.Debug("images attached",
		"event", "images_attached",
		"module", "marketplace/listing-engine",
		"layer", "application",
		"added", result.Added,
		"skipped", result.Skipped,
		"gallery_size", s.gallery.Len(),
	)
	return result, nil
}

func (s *Session) SetCover(imageID string)    { s.gallery.SetCover(imageID) }
func (s *Session) RemoveImage(imageID string) { s.gallery.Remove(imageID) }

func (s *Session) ReorderImages(movedID, targetID string) {
	s.gallery.Reorder(movedID, targetID)
}

// Gallery exposes the current display order for rendering.
func (s *Session) Gallery() []entities.GalleryImage { return s.gallery.Images() }

// SaveDraft persists the current state without validating anything. The
// draft id is assigned on first save and stays stable across repeated saves
// of the same session, so re-saving updates the stored entry in place.
func (s *Session) SaveDraft(ctx context.Context) error {
	if s.draftID == "" {
		id, err := s.deps.IDGenerator.NewID(ctx)
		if err != nil {
			return err
		}
		s.draftID = "draft_" + id
	}

	draft := s.buildListing()
	draft.ID = s.draftID
	draft.IsDraft = true
	if err := s.deps.SaveDraft.Execute(ctx, draft); err != nil {
		return err
	}
	s.notify("Draft saved locally.")
	return nil
}

// Preview builds the record transiently for the detail surface. Nothing is
// persisted and the session state does not change.
func (s *Session) Preview() entities.Listing {
	return s.buildListing()
}

// Publish runs the validation gate and, on success, promotes the record into
// the catalog under a fresh id. On failure the outcome names what to
// highlight and nothing is persisted; the session remains usable either way.
func (s *Session) Publish(ctx context.Context) (PublishOutcome, error) {
	payload, err := s.deps.Publish.Execute(ctx, s.buildListing())
	if err != nil {
		if !payload.Validation.OK() {
			if payload.Validation.ImageRequired {
				s.notify("Add at least one photo")
			}
			s.notify("Please fill required fields (highlighted).")
			return PublishOutcome{
				MissingFields: payload.Validation.MissingFields,
				ImageRequired: payload.Validation.ImageRequired,
			}, nil
		}
		return PublishOutcome{}, err
	}

	s.notify("Published (saved locally).")
	return PublishOutcome{Published: true, Listing: payload.Listing}, nil
}

func (s *Session) buildListing() entities.Listing {
	listing := entities.CloneListing(s.fields)
	listing.Images = s.gallery.Snapshot()
	listing.CreatedAt = s.deps.Clock.Now().UTC().Format(time.RFC3339)
	return listing
}

func (s *Session) notify(message string) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(message)
	}
}

func dataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
