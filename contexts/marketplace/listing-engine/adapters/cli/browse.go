package cli

import (
	"github.com/spf13/cobra"

	"gaadi/contexts/marketplace/listing-engine/application/queries"
	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	"gaadi/internal/app/bootstrap"
)

func newBrowseCmd() *cobra.Command {
	var (
		category string
		search   string
		city     string
		minPrice string
		maxPrice string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the published catalog with filters and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.Build(cmd.Context(), Notifier{Out: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			view, err := app.Module.Browse.Execute(cmd.Context(), queries.BrowseCatalogQuery{
				Category: category,
				Search:   search,
				City:     city,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				Sort:     entities.SortMode(sortBy),
			})
			if err != nil {
				return err
			}

			Renderer{Out: cmd.OutOrStdout()}.RenderGrid(view)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "all", "category filter (substring match)")
	cmd.Flags().StringVarP(&search, "query", "q", "", "free-text search across make, model, city, description")
	cmd.Flags().StringVar(&city, "city", "", "city filter (substring match)")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order: priceAsc, priceDesc or newest")

	return cmd
}
