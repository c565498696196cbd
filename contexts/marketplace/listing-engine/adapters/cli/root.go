package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the terminal surface of the engine. Commands are thin:
// they translate flags and arguments into engine calls and hand results to
// the renderer.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaadi",
		Short: "Local classifieds composer and catalog browser for vehicle listings",
		Long: `Gaadi keeps a vehicle classifieds catalog in a local store and lets you
browse it with filters and sorting, compose new listings with an ordered
image gallery, save drafts, and publish.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newPostCmd())
	cmd.AddCommand(newDraftsCmd())

	return cmd
}
