package export

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/stopwords"
)

var format string
var resources []string
var addFiles []string
var keepFiles []string

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the merged stopword set to a file",
	Long: `Resolve the selected resources, apply addition and keep files, and write
the sorted stopword set to a file. Keep-words are excluded from the export.

Output formats:
  - txt: one word per line (default)
  - json: indented JSON array

Example usage:
  durak export stopwords.txt
  durak export stopwords.json --format json
  durak export custom.txt --resource domains/web --add-file extra.txt --keep-file brands.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caseSensitive := viper.GetBool("case-sensitive")

		manager, err := stopwords.ManagerFromResources(resources, stopwords.ResourceManagerOptions{
			Metadata:      viper.GetString("metadata"),
			CaseSensitive: caseSensitive,
		})
		if err != nil {
			return err
		}
		for _, path := range addFiles {
			if err := manager.LoadAdditions(path); err != nil {
				return err
			}
		}
		for _, path := range keepFiles {
			words, err := stopwords.LoadWords(path, caseSensitive)
			if err != nil {
				return err
			}
			manager.AddKeepWords(words.Words()...)
		}

		if err := manager.Export(args[0], format); err != nil {
			return err
		}
		log.Info("exported stopwords", "path", args[0], "format", format, "words", manager.Stopwords().Len())
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&format, "format", "f", stopwords.FormatText, "Output format (txt, json)")
	ExportCmd.Flags().StringSliceVarP(&resources, "resource", "r", nil, "Resource name(s) for the base set (default: base resource)")
	ExportCmd.Flags().StringSliceVar(&addFiles, "add-file", nil, "Word file(s) to merge into the stopword set")
	ExportCmd.Flags().StringSliceVar(&keepFiles, "keep-file", nil, "Word file(s) whose words must never be exported as stopwords")
}
