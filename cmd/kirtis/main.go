package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/kirtis/internal/cli"
	"codeberg.org/snonux/kirtis/internal/models"
	"codeberg.org/snonux/kirtis/internal/processor"
)

func main() {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cmd.SilenceUsage = true

	// Handle --list-models before any analyzer is set up
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.PrintChatModels(cmd.Context(), os.Stdout, flags.OpenAIModel)
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	ctx := cmd.Context()

	switch {
	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)
	case len(args) == 2:
		return proc.ProcessSingleWord(ctx, args[0], args[1])
	case len(args) == 1:
		return proc.ProcessSingleWord(ctx, args[0], "")
	default:
		// No input provided - run the demo
		if err := proc.RunDemo(ctx); err != nil {
			return fmt.Errorf("demo failed: %w", err)
		}
		return nil
	}
}
