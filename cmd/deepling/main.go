package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codeberg.org/deepling/deepling/internal/batch"
	"codeberg.org/deepling/deepling/internal/cli"
	"codeberg.org/deepling/deepling/internal/logging"
	"codeberg.org/deepling/deepling/internal/processor"
)

func main() {
	// Local overrides, ignored when absent
	_ = godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logging.Setup(flags.LogLevel)

	texts, err := gatherTexts(args, flags)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("nothing to translate: pass a text argument or --batch")
	}

	proc, err := processor.New(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	return proc.Run(context.Background(), texts)
}

// gatherTexts collects the texts to translate from the argument and the
// batch file.
func gatherTexts(args []string, flags *cli.Flags) ([]string, error) {
	var texts []string
	if len(args) == 1 && args[0] != "" {
		texts = append(texts, args[0])
	}
	if flags.BatchFile != "" {
		fromFile, err := batch.ReadBatchFile(flags.BatchFile)
		if err != nil {
			return nil, err
		}
		texts = append(texts, fromFile...)
	}
	return texts, nil
}
