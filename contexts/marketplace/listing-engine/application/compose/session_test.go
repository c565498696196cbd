package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gaadi/contexts/marketplace/listing-engine/application/commands"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

type fakeSource struct {
	name        string
	contentType string
	data        []byte
	err         error
}

func (f fakeSource) Name() string        { return f.name }
func (f fakeSource) ContentType() string { return f.contentType }

func (f fakeSource) Read(_ context.Context) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func jpeg(name string) fakeSource {
	return fakeSource{name: name, contentType: "image/jpeg", data: []byte{0xff, 0xd8}}
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) has(message string) bool {
	for _, m := range n.messages {
		if m == message {
			return true
		}
	}
	return false
}

type seqIDs struct {
	n int
}

func (s *seqIDs) NewID(_ context.Context) (string, error) {
	s.n++
	return fmt.Sprintf("id_%d", s.n), nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingCatalog struct {
	published []entities.Listing
}

func (c *recordingCatalog) ListPublished(_ context.Context) ([]entities.Listing, error) {
	return append([]entities.Listing(nil), c.published...), nil
}

func (c *recordingCatalog) Publish(_ context.Context, listing entities.Listing) (entities.Listing, error) {
	listing.ID = fmt.Sprintf("ad_%d", len(c.published)+1)
	listing.IsDraft = false
	c.published = append([]entities.Listing{listing}, c.published...)
	return listing, nil
}

type recordingDrafts struct {
	saved []entities.Listing
}

func (d *recordingDrafts) ListDrafts(_ context.Context) ([]entities.Listing, error) {
	return append([]entities.Listing(nil), d.saved...), nil
}

func (d *recordingDrafts) UpsertDraft(_ context.Context, listing entities.Listing) error {
	for i, existing := range d.saved {
		if existing.ID == listing.ID {
			d.saved[i] = listing
			return nil
		}
	}
	d.saved = append(d.saved, listing)
	return nil
}

type harness struct {
	session  *Session
	notifier *fakeNotifier
	catalog  *recordingCatalog
	drafts   *recordingDrafts
}

func newHarness() harness {
	notifier := &fakeNotifier{}
	catalog := &recordingCatalog{}
	drafts := &recordingDrafts{}
	session := NewSession(SessionDependencies{
		SaveDraft:   commands.SaveDraftUseCase{Drafts: drafts},
		Publish:     commands.PublishListingUseCase{Catalog: catalog},
		Notifier:    notifier,
		IDGenerator: &seqIDs{},
		Clock:       fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)},
	})
	return harness{session: session, notifier: notifier, catalog: catalog, drafts: drafts}
}

func completeFields() entities.Listing {
	return entities.Listing{
		Make:        "Hyundai",
		Model:       "Creta",
		Year:        "2019",
		KMDriven:    "42000",
		Price:       "850000",
		SellerName:  "Jay Motors",
		SellerPhone: "9999999999",
		City:        "Ahmedabad",
	}
}

func TestAttachImagesMixedBatchDropsNonImages(t *testing.T) {
	h := newHarness()
	result, err := h.session.AttachImages(context.Background(), []ports.ImageSource{
		jpeg("front.jpg"),
		fakeSource{name: "papers.pdf", contentType: "application/pdf", data: []byte("pdf")},
		jpeg("rear.jpg"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Added != 2 || result.Skipped != 0 {
		t.Fatalf("expected 2 added, got %+v", result)
	}
	gallery := h.session.Gallery()
	if len(gallery) != 2 || !gallery[0].IsCover {
		t.Fatalf("expected first image as cover, got %+v", gallery)
	}
	if !strings.HasPrefix(gallery[0].DataURI, "data:image/jpeg;base64,") {
		t.Fatalf("expected data URI capture, got %q", gallery[0].DataURI)
	}
}

func TestAttachImagesAllNonImageRejectsWholeBatch(t *testing.T) {
	h := newHarness()
	_, err := h.session.AttachImages(context.Background(), []ports.ImageSource{
		fakeSource{name: "papers.pdf", contentType: "application/pdf"},
		fakeSource{name: "notes.txt", contentType: "text/plain"},
	})
	if !errors.Is(err, domainerrors.ErrNoImageSources) {
		t.Fatalf("expected ErrNoImageSources, got %v", err)
	}
	if !h.notifier.has("Select image files only") {
		t.Fatalf("expected rejection notification, got %v", h.notifier.messages)
	}
	if len(h.session.Gallery()) != 0 {
		t.Fatalf("expected zero items added")
	}
}

func TestAttachImagesReadFailureKeepsEarlierEntries(t *testing.T) {
	h := newHarness()
	result, err := h.session.AttachImages(context.Background(), []ports.ImageSource{
		jpeg("one.jpg"),
		fakeSource{name: "two.jpg", contentType: "image/jpeg", err: errors.New("disk gone")},
		jpeg("three.jpg"),
	})
	if !errors.Is(err, domainerrors.ErrImageReadFailed) {
		t.Fatalf("expected ErrImageReadFailed, got %v", err)
	}
	if result.Added != 1 {
		t.Fatalf("expected one entry kept, got %+v", result)
	}
	gallery := h.session.Gallery()
	if len(gallery) != 1 || gallery[0].Name != "one.jpg" {
		t.Fatalf("expected only the first file committed, got %+v", gallery)
	}
}

func TestAttachImagesTruncatesSilentlyAtCap(t *testing.T) {
	h := newHarness()
	big := make([]ports.ImageSource, entities.MaxGalleryImages-1)
	for i := range big {
		big[i] = jpeg(fmt.Sprintf("img_%d.jpg", i))
	}
	if _, err := h.session.AttachImages(context.Background(), big); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := h.session.AttachImages(context.Background(), []ports.ImageSource{
		jpeg("a.jpg"), jpeg("b.jpg"), jpeg("c.jpg"),
	})
	if err != nil {
		t.Fatalf("truncation must not raise an error, got %v", err)
	}
	if result.Added != 1 || result.Skipped != 2 {
		t.Fatalf("expected 1 added and 2 skipped, got %+v", result)
	}
	if got := len(h.session.Gallery()); got != entities.MaxGalleryImages {
		t.Fatalf("expected gallery at cap, got %d", got)
	}
}

func TestSaveDraftTwiceUpdatesInPlace(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.session.SetFields(entities.Listing{Make: "Maruti"})

	if err := h.session.SaveDraft(ctx); err != nil {
		t.Fatalf("first save: %v", err)
	}
	h.session.SetFields(entities.Listing{Make: "Maruti", Model: "Swift"})
	if err := h.session.SaveDraft(ctx); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if len(h.drafts.saved) != 1 {
		t.Fatalf("expected one draft entry, got %d", len(h.drafts.saved))
	}
	draft := h.drafts.saved[0]
	if !strings.HasPrefix(draft.ID, "draft_") {
		t.Fatalf("expected draft id prefix, got %q", draft.ID)
	}
	if draft.Model != "Swift" {
		t.Fatalf("expected updated draft contents, got %+v", draft)
	}
	if !h.notifier.has("Draft saved locally.") {
		t.Fatalf("expected save notification, got %v", h.notifier.messages)
	}
}

func TestPublishInvalidSessionPersistsNothing(t *testing.T) {
	h := newHarness()
	h.session.SetFields(entities.Listing{Model: "Creta"}) // everything else missing, no images

	outcome, err := h.session.Publish(context.Background())
	if err != nil {
		t.Fatalf("validation failure is user-correctable, got error %v", err)
	}
	if outcome.Published {
		t.Fatalf("expected publish rejected")
	}
	if !outcome.ImageRequired {
		t.Fatalf("expected image requirement in outcome")
	}
	if len(h.catalog.published) != 0 {
		t.Fatalf("expected nothing persisted, got %d", len(h.catalog.published))
	}
	if !h.notifier.has("Add at least one photo") ||
		!h.notifier.has("Please fill required fields (highlighted).") {
		t.Fatalf("expected both failure notifications, got %v", h.notifier.messages)
	}
}

func TestPublishValidSession(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.session.SetFields(completeFields())
	if _, err := h.session.AttachImages(ctx, []ports.ImageSource{jpeg("front.jpg")}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	outcome, err := h.session.Publish(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !outcome.Published || !strings.HasPrefix(outcome.Listing.ID, "ad_") {
		t.Fatalf("expected published outcome, got %+v", outcome)
	}
	if len(h.catalog.published) != 1 {
		t.Fatalf("expected one published listing, got %d", len(h.catalog.published))
	}
	if !h.notifier.has("Published (saved locally).") {
		t.Fatalf("expected success notification, got %v", h.notifier.messages)
	}
	// the session stays usable after publishing
	if err := h.session.SaveDraft(ctx); err != nil {
		t.Fatalf("session unusable after publish: %v", err)
	}
}

func TestPreviewPersistsNothing(t *testing.T) {
	h := newHarness()
	h.session.SetFields(completeFields())

	preview := h.session.Preview()
	if preview.Make != "Hyundai" || preview.ID != "" {
		t.Fatalf("expected transient record without identity, got %+v", preview)
	}
	if len(h.catalog.published) != 0 || len(h.drafts.saved) != 0 {
		t.Fatalf("preview must not persist")
	}
}

func TestResetIsHard(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.session.SetFields(completeFields())
	if _, err := h.session.AttachImages(ctx, []ports.ImageSource{jpeg("front.jpg")}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := h.session.SaveDraft(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	firstID := h.drafts.saved[0].ID

	h.session.Reset()
	if len(h.session.Gallery()) != 0 {
		t.Fatalf("expected gallery cleared")
	}
	if preview := h.session.Preview(); preview.Make != "" {
		t.Fatalf("expected fields cleared, got %+v", preview)
	}

	// a new draft id is assigned after reset, never the old one
	if err := h.session.SaveDraft(ctx); err != nil {
		t.Fatalf("save after reset: %v", err)
	}
	if len(h.drafts.saved) != 2 || h.drafts.saved[1].ID == firstID {
		t.Fatalf("expected a fresh draft entry, got %+v", h.drafts.saved)
	}
}

func TestSetFieldsCapsDescription(t *testing.T) {
	h := newHarness()
	fields := completeFields()
	fields.Description = strings.Repeat("x", entities.DescriptionLimit+100)
	h.session.SetFields(fields)
	if got := len(h.session.Preview().Description); got != entities.DescriptionLimit {
		t.Fatalf("expected description capped at %d, got %d", entities.DescriptionLimit, got)
	}
}
