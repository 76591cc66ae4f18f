package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var modelFlag string
	var batchSizeFlag int

	rootCmd := &cobra.Command{
		Use:           "vtt-translate [file]",
		Short:         "Translate English WebVTT subtitles to Korean with Gemini",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, modelFlag, batchSizeFlag)
		},
	}

	rootCmd.Flags().StringVar(&modelFlag, "model", "", "Gemini model to use (default: gemini-2.5-flash)")
	rootCmd.Flags().IntVar(&batchSizeFlag, "batch-size", 0, "Subtitles per translation request (default: 10)")

	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}
