package cli

import (
	"github.com/spf13/cobra"

	"gaadi/internal/app/bootstrap"
)

func newDraftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List locally saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Build(cmd.Context(), Notifier{Out: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			drafts, err := app.Module.Store.ListDrafts(cmd.Context())
			if err != nil {
				return err
			}

			Renderer{Out: cmd.OutOrStdout()}.RenderDrafts(drafts)
			return nil
		},
	}
}
