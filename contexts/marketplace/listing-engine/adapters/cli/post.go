package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gaadi/contexts/marketplace/listing-engine/domain/entities"
	domainerrors "gaadi/contexts/marketplace/listing-engine/domain/errors"
	"gaadi/internal/app/bootstrap"
)

func newPostCmd() *cobra.Command {
	var (
		fields      entities.Listing
		showContact string
		images      []string
		coverIndex  int
		asDraft     bool
		previewOnly bool
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Compose a listing: publish it, save it as a draft, or preview it",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier := Notifier{Out: cmd.ErrOrStderr()}
			app, err := bootstrap.Build(cmd.Context(), notifier)
			if err != nil {
				return err
			}
			defer app.Close()

			session := app.Module.NewSession()
			fields.ShowContact = entities.ContactVisibility(showContact)
			session.SetFields(fields)

			if len(images) > 0 {
				if _, err := session.AttachImages(cmd.Context(), FileSources(images)); err != nil {
					// A batch with no image files was already reported through
					// the notifier; the session stays usable without images.
					if !errors.Is(err, domainerrors.ErrNoImageSources) {
						return err
					}
				}
			}
			if gallery := session.Gallery(); coverIndex > 0 && coverIndex <= len(gallery) {
				session.SetCover(gallery[coverIndex-1].ID)
			}

			switch {
			case previewOnly:
				Renderer{Out: cmd.OutOrStdout()}.RenderDetail(session.Preview())
			case asDraft:
				if err := session.SaveDraft(cmd.Context()); err != nil {
					return err
				}
			default:
				outcome, err := session.Publish(cmd.Context())
				if err != nil {
					return err
				}
				if !outcome.Published {
					if len(outcome.MissingFields) > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "Missing: %s\n", strings.Join(outcome.MissingFields, ", "))
					}
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published %s\n", outcome.Listing.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Make, "make", "", "vehicle make")
	cmd.Flags().StringVar(&fields.Model, "model", "", "vehicle model")
	cmd.Flags().StringVar(&fields.Variant, "variant", "", "variant")
	cmd.Flags().StringVar(&fields.Year, "year", "", "model year")
	cmd.Flags().StringVar(&fields.KMDriven, "km", "", "kilometers driven")
	cmd.Flags().StringVar(&fields.Price, "price", "", "asking price")
	cmd.Flags().StringVar(&fields.Fuel, "fuel", "", "fuel type")
	cmd.Flags().StringVar(&fields.Transmission, "transmission", "", "transmission")
	cmd.Flags().StringVar(&fields.SellerName, "seller", "", "seller name")
	cmd.Flags().StringVar(&fields.SellerPhone, "phone", "", "seller phone")
	cmd.Flags().StringVar(&fields.City, "city", "", "city")
	cmd.Flags().StringVar(&fields.Locality, "locality", "", "locality")
	cmd.Flags().StringVar(&fields.Description, "desc", "", "description")
	cmd.Flags().StringVar(&fields.Category, "category", "", "category")
	cmd.Flags().StringVar(&showContact, "show-contact", string(entities.ContactHidden), "show seller phone on the detail view (Yes/No)")
	cmd.Flags().StringArrayVar(&images, "image", nil, "image file to attach (repeatable, ordered)")
	cmd.Flags().IntVar(&coverIndex, "cover", 0, "1-based position of the cover image")
	cmd.Flags().BoolVar(&asDraft, "draft", false, "save as draft instead of publishing")
	cmd.Flags().BoolVar(&previewOnly, "preview", false, "render a preview without persisting anything")

	return cmd
}
