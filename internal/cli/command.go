package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/deepling/deepling/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deepling [text]",
		Short: "Glossary-aware DeepL translation client",
		Long: `deepling translates text through the DeepL web endpoint, optionally
biasing the output with a custom terminology glossary loaded from a
CSV file.

Examples:
  deepling -t FR "Hello ! Today is great."
  deepling -t FR --glossary terms.csv -s EN "Hello !"
  deepling -t DE --formality formal --batch texts.txt
  deepling -t FR --glossary terms.csv --dry-run "Hello !"   # compile only
  deepling --detect "Un texte magnifique"                   # language detection`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.deepling.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.TargetLang, "target", "t", flags.TargetLang, "Target language (ISO 639-1 code)")
	cmd.Flags().StringVarP(&flags.SourceLang, "source", "s", flags.SourceLang, "Source language (ISO 639-1 code, or auto)")
	cmd.Flags().StringVar(&flags.Formality, "formality", flags.Formality, "Formality: informal, formal or auto")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate texts from file (one per line)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Compile the request and print it without calling the provider")
	cmd.Flags().BoolVar(&flags.Detect, "detect", false, "Detect the source language of the text instead of translating")

	// Glossary flags
	cmd.Flags().StringVarP(&flags.GlossaryFile, "glossary", "g", "", "Glossary CSV file (header row names the two language codes)")
	cmd.Flags().StringVar(&flags.GlossarySep, "glossary-sep", flags.GlossarySep, "Glossary CSV separator")
	cmd.Flags().StringVar(&flags.GlossaryEncoding, "glossary-encoding", flags.GlossaryEncoding, "Glossary file text encoding")
	cmd.Flags().IntVar(&flags.GlossaryCap, "glossary-cap", flags.GlossaryCap, "Maximum glossary entries per request")

	// Provider flags
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", "", "Override the provider JSONRPC endpoint")

	// Cache flags
	cmd.Flags().StringVar(&flags.CacheFile, "cache", "", "Translation cache database (default is $HOME/.deepling.cache.db)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the translation cache")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.target", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translate.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translate.formality", cmd.Flags().Lookup("formality"))
	viper.BindPFlag("glossary.file", cmd.Flags().Lookup("glossary"))
	viper.BindPFlag("glossary.separator", cmd.Flags().Lookup("glossary-sep"))
	viper.BindPFlag("glossary.encoding", cmd.Flags().Lookup("glossary-encoding"))
	viper.BindPFlag("glossary.cap", cmd.Flags().Lookup("glossary-cap"))
	viper.BindPFlag("provider.endpoint", cmd.Flags().Lookup("endpoint"))
	viper.BindPFlag("cache.file", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".deepling" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".deepling")
	}

	// Environment variables
	viper.SetEnvPrefix("DEEPLING")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetEndpoint returns the provider endpoint override from flags, config
// or environment; empty means the built-in default.
func GetEndpoint() string {
	return viper.GetString("provider.endpoint")
}
