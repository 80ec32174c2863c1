package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	log "github.com/charmbracelet/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	e "github.com/cloudposse/treegen/internal/exec"
	"github.com/cloudposse/treegen/pkg/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "treegen FILE...",
	Short: "Generate file and folder trees from Markdown, YAML, JSON, TOML, and JSON5 specifications",
	Long: `Treegen compiles directory-tree specifications into real directories and files.

A specification is either a Markdown tree drawing (the output format of the
'tree' command) or a nested mapping in YAML, JSON, TOML or JSON5, where string
values become file content and nested mappings become subdirectories. Multiple
input files are merged into a single tree before anything is written.`,
	Example: `  treegen structure.md
  treegen structure.yaml --out ./my-project -v
  treegen base.json5 extra.toml --dry-run`,
	Version:       version.Version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		opts := &e.Options{
			OutDir:  viper.GetString("out"),
			DryRun:  viper.GetBool("dry-run"),
			Verbose: viper.GetBool("verbose"),
			Clean:   viper.GetBool("clean"),
			Mode:    viper.GetString("mode"),
		}
		return e.ExecuteGenerate(args, opts)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen
// once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringP("out", "o", "", "Output root directory (default: the current working directory)")
	RootCmd.PersistentFlags().Bool("dry-run", false, "Preview what would be created without writing to disk")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print one line per created file and directory")
	RootCmd.PersistentFlags().Bool("clean", false, "Remove the output directory before generating (use with care)")
	RootCmd.PersistentFlags().String("mode", "0644", "Permissions for created files (octal; Unix only)")

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.Fatal("failed to bind flags", "error", err)
	}
}

// initConfig merges settings in the following order: command-line
// arguments, TREEGEN_* environment variables, then an optional
// treegen.yaml in the current directory or in ~/.treegen.
func initConfig() {
	viper.SetConfigName("treegen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".treegen"))
	}

	viper.SetEnvPrefix("TREEGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("failed to read config file", "error", err)
		}
	}
}
