package cli

import (
	"errors"

	"github.com/spf13/cobra"

	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/internal/app/bootstrap"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <listing-id>",
		Short: "Show one published listing in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := Notifier{Out: cmd.ErrOrStderr()}
			app, err := bootstrap.Build(cmd.Context(), notifier)
			if err != nil {
				return err
			}
			defer app.Close()

			item, err := app.Module.GetListing.Execute(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, domainerrors.ErrListingNotFound) {
					notifier.Notify("Listing not found")
					return nil
				}
				return err
			}

			Renderer{Out: cmd.OutOrStdout()}.RenderDetail(item)
			return nil
		},
	}
}
