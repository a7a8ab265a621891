package list

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/stopwords"
)

var asJSON bool
var showNames bool

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list [resource...]",
	Short: "Print a resource's stopwords, sorted",
	Long: `Print the effective word set of one or more stopword resources, sorted.
Multiple resources are resolved independently and merged. With no arguments
the default resource is used.

Example usage:
  durak list
  durak list domains/social_media
  durak list base/turkish domains/web --json
  durak list --names`,
	RunE: func(cmd *cobra.Command, args []string) error {
		metadata := viper.GetString("metadata")

		if showNames {
			if len(args) > 0 {
				return fmt.Errorf("--names cannot be used with resource arguments")
			}
			resolver := stopwords.DefaultResolver()
			if metadata != "" {
				var err error
				resolver, err = stopwords.ResolverForPath(metadata)
				if err != nil {
					return err
				}
			}
			names, err := resolver.Names()
			if err != nil {
				return err
			}
			return printWords(cmd, names)
		}

		words, err := stopwords.ListStopwords(stopwords.QueryOptions{
			Resources:     args,
			Metadata:      metadata,
			CaseSensitive: viper.GetBool("case-sensitive"),
		})
		if err != nil {
			return err
		}
		return printWords(cmd, words)
	},
}

func printWords(cmd *cobra.Command, words []string) error {
	if asJSON {
		encoded, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode words: %w", err)
		}
		cmd.Println(string(encoded))
		return nil
	}
	for _, word := range words {
		cmd.Println(word)
	}
	return nil
}

func init() {
	ListCmd.Flags().BoolVar(&asJSON, "json", false, "Output a JSON array instead of one word per line")
	ListCmd.Flags().BoolVar(&showNames, "names", false, "List declared resource names instead of words")
}
