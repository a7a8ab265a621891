package check

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/stopwords"
)

var resources []string
var quiet bool

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <token>",
	Short: "Test whether a token is a stopword",
	Long: `Test a single token against a stopword resource. Exits 0 when the token
is a stopword and 1 when it is not.

Example usage:
  durak check ve
  durak check rt --resource domains/social_media
  durak check Durak --case-sensitive`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := args[0]
		found, err := stopwords.IsStopword(token, stopwords.QueryOptions{
			Resources:     resources,
			Metadata:      viper.GetString("metadata"),
			CaseSensitive: viper.GetBool("case-sensitive"),
		})
		if err != nil {
			return err
		}
		if !quiet {
			if found {
				cmd.Printf("%s: stopword\n", token)
			} else {
				cmd.Printf("%s: not a stopword\n", token)
			}
		}
		if !found {
			return fmt.Errorf("%q is not a stopword", token)
		}
		return nil
	},
}

func init() {
	CheckCmd.Flags().StringSliceVarP(&resources, "resource", "r", nil, "Resource name(s) to check against (default: base resource)")
	CheckCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output; use the exit code only")
}
