package watch

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate a stopword bundle whenever it changes",
	Long: `Watch a metadata document's directory and revalidate the whole bundle on
every change: the document is reparsed and every declared resource is
resolved from scratch, with failures logged per resource. Useful while
authoring a resource bundle.

Requires --metadata; the embedded bundle cannot change.

Example usage:
  durak watch --metadata ./bundle/metadata.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metadata := viper.GetString("metadata")
		if metadata == "" {
			return fmt.Errorf("watch requires --metadata pointing at a metadata.json")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watchAndValidate(ctx, metadata, viper.GetBool("case-sensitive"))
	},
}
