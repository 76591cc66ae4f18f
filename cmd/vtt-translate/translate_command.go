package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subtran/vtt-translate/internal/config"
	"github.com/subtran/vtt-translate/internal/gemini"
	"github.com/subtran/vtt-translate/internal/service"
)

const defaultInputFile = "subtitles-en.vtt"

func runTranslate(cmd *cobra.Command, args []string, model string, batchSize int) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	// Step 1: input file
	fmt.Fprintln(out, "\nStep 1: Input file selection")
	var inputPath string
	if len(args) > 0 {
		inputPath = strings.TrimSpace(args[0])
		fmt.Fprintf(out, "Using file: %s\n", inputPath)
	} else {
		input, err := promptInputPath(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if strings.EqualFold(input, "exit") {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		inputPath = input
	}
	if inputPath == "" {
		inputPath = defaultInputFile
	}

	// Step 2: environment and API key
	fmt.Fprintln(out, "\nStep 2: Loading API configuration")
	config.LoadUserEnv()
	cfg, err := config.NewFromEnv(
		config.WithModel(model),
		config.WithBatchSize(batchSize),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ Gemini API key loaded successfully")

	client, err := gemini.NewClient(&cfg.Gemini)
	if err != nil {
		return err
	}

	// Steps 3-5: parse, translate, save
	pipeline := service.NewPipeline(client.GenerateContent,
		service.WithBatchSize(cfg.Translate.BatchSize),
		service.WithOutput(out),
	)

	result, err := pipeline.Run(cmd.Context(), inputPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummaryTable(result.Outcomes))

	if failed := result.FailedBatches(); failed > 0 {
		fmt.Fprintf(out, "✓ Translation completed with %d failed batch(es); affected subtitles keep their English text\n", failed)
	} else {
		fmt.Fprintln(out, "✓ Translation completed successfully!")
	}
	fmt.Fprintf(out, "✓ Korean subtitles saved as: %s\n", result.OutputPath)

	return nil
}

func promptInputPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintf(out, "Enter VTT file path (default: %s, type 'exit' to quit): ", defaultInputFile)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printBanner(out io.Writer) {
	const title = "VTT Subtitle Translation Tool"
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("=", len(title)))
	fmt.Fprintln(out, "Powered by Gemini 2.5 Flash AI Model")
}
