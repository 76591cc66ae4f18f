package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/subtran/vtt-translate/internal/subtitle"
	"github.com/subtran/vtt-translate/internal/translator"
	"github.com/subtran/vtt-translate/pkg/file"
)

// Result summarizes a completed pipeline run
type Result struct {
	InputPath  string
	OutputPath string
	CueCount   int
	Language   language.Tag
	Outcomes   []translator.BatchOutcome
}

// TranslatedCues counts cues that received translated text
func (r *Result) TranslatedCues() int {
	total := 0
	for _, o := range r.Outcomes {
		total += o.Translated
	}
	return total
}

// FailedBatches counts batches that fell back to original text
func (r *Result) FailedBatches() int {
	failed := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed++
		}
	}
	return failed
}

// Pipeline sequences parse, batch translation, and write for one file.
// It owns no durable state beyond the single run.
type Pipeline struct {
	translate translator.TranslateFunc
	writer    subtitle.Writer
	progress  translator.ProgressFactory
	batchSize int
	out       io.Writer
}

// PipelineOption configures a Pipeline
type PipelineOption func(*Pipeline)

// WithBatchSize overrides the default translation batch size
func WithBatchSize(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithProgress overrides the per-batch progress indicator factory
func WithProgress(factory translator.ProgressFactory) PipelineOption {
	return func(p *Pipeline) {
		if factory != nil {
			p.progress = factory
		}
	}
}

// WithOutput redirects step announcements (default: stdout)
func WithOutput(w io.Writer) PipelineOption {
	return func(p *Pipeline) {
		if w != nil {
			p.out = w
		}
	}
}

// NewPipeline creates a pipeline over the given translation boundary
func NewPipeline(translate translator.TranslateFunc, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		translate: translate,
		writer:    subtitle.NewWriter(),
		progress:  translator.SpinnerProgress,
		batchSize: translator.DefaultBatchSize,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run parses inputPath, translates its cues batch by batch, and writes
// the Korean VTT file next to the input. Parse failures and an empty cue
// set are fatal and reported before any translation call; per-batch
// translation failures are contained inside the batch translator and
// surface only in the result's outcomes.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (*Result, error) {
	fmt.Fprintln(p.out, "\nStep 3: Parsing VTT file")
	fmt.Fprintf(p.out, "Reading file: %s\n", inputPath)

	doc, err := subtitle.NewReader(inputPath).Read()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.out, "✓ Detected %s VTT file with %d subtitle entries\n",
		languageName(doc.Language), len(doc.Cues))

	if len(doc.Cues) == 0 {
		return nil, ErrNoCues
	}

	fmt.Fprintln(p.out, "\nStep 4: Translating subtitles to Korean")
	fmt.Fprintf(p.out, "Translating %d subtitle entries...\n", len(doc.Cues))

	batcher := translator.NewBatchTranslator(p.translate,
		translator.WithBatchSize(p.batchSize),
		translator.WithProgress(p.progress),
	)
	cues, outcomes := batcher.TranslateAll(ctx, doc.Cues)

	fmt.Fprintln(p.out, "\nStep 5: Saving Korean VTT file")
	outputPath := file.OutputPath(inputPath)
	translated := &subtitle.Document{
		Header:   doc.Header,
		Cues:     cues,
		Language: language.Korean,
	}
	if err := p.writer.Write(outputPath, translated); err != nil {
		return nil, fmt.Errorf("failed to save translation results: %w", err)
	}

	fmt.Fprintf(p.out, "Korean subtitles saved to: %s\n", outputPath)

	return &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		CueCount:   len(cues),
		Language:   doc.Language,
		Outcomes:   outcomes,
	}, nil
}

func languageName(tag language.Tag) string {
	if tag == language.Und {
		return "unknown"
	}
	return display.English.Languages().Name(tag)
}
