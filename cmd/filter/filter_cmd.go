package filter

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/stopwords"
)

var resources []string
var additions []string
var keep []string

// FilterCmd represents the filter command
var FilterCmd = &cobra.Command{
	Use:   "filter [token...]",
	Short: "Remove stopwords from a token sequence",
	Long: `Remove stopwords from tokens given as arguments, or read whitespace-
separated tokens from stdin when no arguments are provided. Surviving tokens
are printed one per line in their original order.

Example usage:
  durak filter ve Durak ama
  echo "rt harika bir paylaşım" | durak filter --resource domains/social_media
  durak filter ve önemli --keep önemli --add gereksiz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := args
		if len(tokens) == 0 {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Split(bufio.ScanWords)
			for scanner.Scan() {
				tokens = append(tokens, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		manager, err := stopwords.ManagerFromResources(resources, stopwords.ResourceManagerOptions{
			Metadata:      viper.GetString("metadata"),
			Additions:     additions,
			Keep:          keep,
			CaseSensitive: viper.GetBool("case-sensitive"),
		})
		if err != nil {
			return err
		}

		filtered := manager.Filter(tokens)
		if len(filtered) > 0 {
			cmd.Println(strings.Join(filtered, "\n"))
		}
		return nil
	},
}

func init() {
	FilterCmd.Flags().StringSliceVarP(&resources, "resource", "r", nil, "Resource name(s) for the base set (default: base resource)")
	FilterCmd.Flags().StringSliceVar(&additions, "add", nil, "Extra words to treat as stopwords")
	FilterCmd.Flags().StringSliceVar(&keep, "keep", nil, "Words that must never be filtered")
}
