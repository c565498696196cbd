package kvcatalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"gaadi/contexts/marketplace/listing-engine/adapters/memory"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	kv := memory.NewStore()
	clock := fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
	return NewStore(kv, kv, clock, nil), kv
}

func TestListPublishedAbsentKeyIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	all, err := store.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty partition, got %d", len(all))
	}
}

func TestListPublishedCorruptPayloadDegradesToEmpty(t *testing.T) {
	store, kv := newTestStore(t)
	if err := kv.Set(context.Background(), store.ListingsKey, "{not json]"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}
	all, err := store.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("corruption must not surface as an error, got %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty partition, got %d", len(all))
	}
}

func TestPublishAssignsIdentityAndPrepends(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Publish(ctx, entities.Listing{Make: "Hyundai", IsDraft: true})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := store.Publish(ctx, entities.Listing{Make: "Tata"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if !strings.HasPrefix(first.ID, "ad_") || first.ID == second.ID {
		t.Fatalf("expected fresh prefixed ids, got %q and %q", first.ID, second.ID)
	}
	if first.IsDraft {
		t.Fatalf("published record must not stay a draft")
	}
	if first.CreatedAt == "" {
		t.Fatalf("expected timestamp assigned")
	}

	all, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected most-recent-first order, got %+v", all)
	}
}

func TestUpsertDraftReplacesInPlace(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	drafts := []entities.Listing{
		{ID: "draft_a", Make: "Maruti"},
		{ID: "draft_b", Make: "Honda"},
		{ID: "draft_c", Make: "Tata"},
	}
	for _, d := range drafts {
		if err := store.UpsertDraft(ctx, d); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	updated := entities.Listing{ID: "draft_b", Make: "Honda", Model: "City"}
	if err := store.UpsertDraft(ctx, updated); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	stored, err := store.ListDrafts(ctx)
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected replacement, not duplication: %d drafts", len(stored))
	}
	if stored[1].ID != "draft_b" || stored[1].Model != "City" {
		t.Fatalf("expected draft_b updated in place, got %+v", stored[1])
	}
	if !stored[1].IsDraft {
		t.Fatalf("expected draft flag forced on")
	}
}

func TestDraftAndPublishedPartitionsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertDraft(ctx, entities.Listing{ID: "draft_a"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	published, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(published) != 0 {
		t.Fatalf("draft write leaked into published partition: %+v", published)
	}
}
