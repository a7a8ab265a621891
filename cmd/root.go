package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/cmd/check"
	"github.com/durak-nlp/durak/cmd/export"
	"github.com/durak-nlp/durak/cmd/filter"
	"github.com/durak-nlp/durak/cmd/graph"
	"github.com/durak-nlp/durak/cmd/list"
	"github.com/durak-nlp/durak/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "durak",
	Short: "Resolve, inspect, and apply Turkish stopword resources",
	Long: `Durak manages named stopword resources declared in a metadata document.
Resources inherit from each other via extends and alias declarations; the
resolver computes each resource's effective word set with cycle detection.

By default commands run against the embedded Turkish bundle. Point --metadata
at a metadata.json to use your own resource bundle instead.

Use 'durak --help' to see all available commands, or 'durak <command> --help'
for detailed information about a specific command.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(filter.FilterCmd)
	rootCmd.AddCommand(export.ExportCmd)
	rootCmd.AddCommand(graph.GraphCmd)
	rootCmd.AddCommand(watch.WatchCmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	rootCmd.PersistentFlags().String("metadata", "", "Path to a stopword metadata.json (default: embedded bundle)")
	rootCmd.PersistentFlags().Bool("case-sensitive", false, "Match stopwords case-sensitively")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Flags may also come from DURAK_METADATA / DURAK_CASE_SENSITIVE.
	viper.SetEnvPrefix("durak")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("metadata", rootCmd.PersistentFlags().Lookup("metadata")))
	cobra.CheckErr(viper.BindPFlag("case-sensitive", rootCmd.PersistentFlags().Lookup("case-sensitive")))
}
