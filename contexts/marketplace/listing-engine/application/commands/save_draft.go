package commands

import (
	"context"
	"log/slog"

	application "gaadi/contexts/marketplace/listing-engine/application"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/contexts/marketplace/listing-engine/ports"
)

type SaveDraftUseCase struct {
	Drafts ports.DraftRepository
	Logger *slog.Logger
}

// Execute upserts the draft as-is. Drafts are allowed to violate every
// validation rule; repeated saves with the same id replace the stored entry
// in place.
func (u SaveDraftUseCase) Execute(ctx context.Context, draft entities.Listing) error {
	logger := application.ResolveLogger(u.Logger)

	draft.IsDraft = true
	if err := u.Drafts.UpsertDraft(ctx, draft); err != nil {
		logger.Error("draft save failed",
			"event", "save_draft_failed",
			"module", "marketplace/listing-engine",
			"layer", "application",
			"draft_id", draft.ID,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("draft saved",
		"event", "draft_saved",
		"module", "marketplace/listing-engine",
		"layer", "application",
		"draft_id", draft.ID,
		"images", len(draft.Images),
	)
	return nil
}
