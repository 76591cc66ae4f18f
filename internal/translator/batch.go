package translator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/subtran/vtt-translate/internal/subtitle"
)

// DefaultBatchSize is the number of cues sent per translation request
const DefaultBatchSize = 10

// promptHeader instructs the model to preserve line count and ordering so
// responses can be matched back to cues by position.
const promptHeader = `Translate the following English subtitle texts to Korean.
Keep the translations natural and appropriate for subtitles.
Maintain the same number of lines as the input.
Return only the translated texts, one per line, in the same order:

`

// ordinalPrefix matches numbering the model may echo back ("3. text")
var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// BatchTranslator partitions cues into fixed-size batches and issues one
// translation request per batch, sequentially. Failures are contained at
// the batch boundary: a failed batch keeps its original English text and
// the following batches still run.
type BatchTranslator struct {
	batchSize int
	translate TranslateFunc
	progress  ProgressFactory
}

// Option configures a BatchTranslator
type Option func(*BatchTranslator)

// WithBatchSize overrides the default batch size
func WithBatchSize(n int) Option {
	return func(t *BatchTranslator) {
		if n > 0 {
			t.batchSize = n
		}
	}
}

// WithProgress overrides the per-batch progress indicator factory
func WithProgress(factory ProgressFactory) Option {
	return func(t *BatchTranslator) {
		if factory != nil {
			t.progress = factory
		}
	}
}

// NewBatchTranslator creates a batch translator over the given
// translation boundary
func NewBatchTranslator(translate TranslateFunc, opts ...Option) *BatchTranslator {
	t := &BatchTranslator{
		batchSize: DefaultBatchSize,
		translate: translate,
		progress:  SpinnerProgress,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TranslateAll translates all cues in original order. The returned slice
// always has the same length and order as the input; timestamps are
// carried over verbatim. Cues from failed batches keep their original
// text. The outcome list records one entry per batch.
func (t *BatchTranslator) TranslateAll(ctx context.Context, cues []subtitle.Cue) ([]subtitle.Cue, []BatchOutcome) {
	if len(cues) == 0 {
		return nil, nil
	}

	total := (len(cues) + t.batchSize - 1) / t.batchSize
	translated := make([]subtitle.Cue, 0, len(cues))
	outcomes := make([]BatchOutcome, 0, total)

	for i := 0; i < len(cues); i += t.batchSize {
		end := min(i+t.batchSize, len(cues))
		batch := cues[i:end]
		num := i/t.batchSize + 1

		texts := make([]string, len(batch))
		for j, cue := range batch {
			texts[j] = cue.Text
		}

		prog := t.progress(fmt.Sprintf("Batch %d/%d: Translating %d subtitles", num, total, len(batch)))
		prog.Start()
		prog.SetLabel("Translating batch with Gemini AI...")

		result := t.translateBatch(ctx, texts)

		outcome := BatchOutcome{Index: num, Size: len(batch), Err: result.Err}
		if result.Err != nil {
			prog.Fail(fmt.Sprintf("Batch %d/%d: Failed - %v", num, total, result.Err))
		} else {
			outcome.Translated = min(len(result.Texts), len(batch))
			prog.Succeed(fmt.Sprintf("Batch %d/%d: Translated %d subtitles", num, total, len(batch)))
		}

		for j, cue := range batch {
			text := cue.Text
			if result.Err == nil && j < len(result.Texts) {
				text = result.Texts[j]
			}
			translated = append(translated, subtitle.Cue{
				Timestamp: cue.Timestamp,
				Text:      text,
			})
		}
		outcomes = append(outcomes, outcome)
	}

	return translated, outcomes
}

// translateBatch issues one request and cleans the response. Any error
// from the translation boundary is returned as a result value.
func (t *BatchTranslator) translateBatch(ctx context.Context, texts []string) BatchResult {
	response, err := t.translate(ctx, BuildPrompt(texts))
	if err != nil {
		return BatchResult{Err: err}
	}
	return BatchResult{Texts: cleanResponse(response, len(texts))}
}

// BuildPrompt builds the numbered batch translation request
func BuildPrompt(texts []string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for i, text := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, text)
	}
	return b.String()
}

// cleanResponse splits the model output into lines, strips echoed
// numbering, drops empties, and truncates to at most limit entries.
// Alignment to source cues is strictly positional.
func cleanResponse(response string, limit int) []string {
	lines := strings.Split(strings.TrimSpace(response), "\n")

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		c := ordinalPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		if c == "" {
			continue
		}
		cleaned = append(cleaned, c)
	}

	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return cleaned
}
