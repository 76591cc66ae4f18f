package translator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtran/vtt-translate/internal/subtitle"
)

func makeCues(n int) []subtitle.Cue {
	cues := make([]subtitle.Cue, n)
	for i := range cues {
		cues[i] = subtitle.Cue{
			Timestamp: fmt.Sprintf("00:00:%02d.000 --> 00:00:%02d.000", i, i+1),
			Text:      fmt.Sprintf("english line %02d", i),
		}
	}
	return cues
}

// echoTranslator returns "ko:<text>" per numbered prompt line
func echoTranslator(ctx context.Context, prompt string) (string, error) {
	var out []string
	for _, line := range strings.Split(prompt, "\n") {
		trimmed := strings.TrimSpace(line)
		if m := ordinalPrefix.FindString(trimmed); m != "" {
			out = append(out, "ko:"+strings.TrimPrefix(trimmed, m))
		}
	}
	return strings.Join(out, "\n"), nil
}

func TestTranslateAll_PreservesOrderAndTimestamps(t *testing.T) {
	cues := makeCues(23)

	bt := NewBatchTranslator(echoTranslator, WithProgress(NoProgress))
	got, outcomes := bt.TranslateAll(context.Background(), cues)

	require.Len(t, got, len(cues))
	require.Len(t, outcomes, 3) // ceil(23/10)
	for i, cue := range got {
		assert.Equal(t, cues[i].Timestamp, cue.Timestamp)
		assert.Equal(t, "ko:"+cues[i].Text, cue.Text)
	}
}

func TestTranslateAll_BatchPartition(t *testing.T) {
	var prompts []string
	record := func(ctx context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return echoTranslator(ctx, prompt)
	}

	cues := makeCues(25)
	bt := NewBatchTranslator(record, WithProgress(NoProgress))
	_, outcomes := bt.TranslateAll(context.Background(), cues)

	require.Len(t, prompts, 3)
	assert.Equal(t, []int{10, 10, 5}, []int{outcomes[0].Size, outcomes[1].Size, outcomes[2].Size})

	// every cue appears in exactly one prompt, in order
	var joined []string
	for _, p := range prompts {
		joined = append(joined, p)
	}
	all := strings.Join(joined, "\n")
	for _, cue := range cues {
		assert.Equal(t, 1, strings.Count(all, cue.Text))
	}
}

func TestTranslateAll_FallbackOnBatchError(t *testing.T) {
	calls := 0
	flaky := func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 2 {
			return "", fmt.Errorf("network error")
		}
		return echoTranslator(ctx, prompt)
	}

	cues := makeCues(25)
	bt := NewBatchTranslator(flaky, WithProgress(NoProgress))
	got, outcomes := bt.TranslateAll(context.Background(), cues)

	require.Len(t, got, 25)
	require.Len(t, outcomes, 3)

	// first batch translated
	assert.Equal(t, "ko:english line 00", got[0].Text)
	// second batch fell back to originals, untouched
	for i := 10; i < 20; i++ {
		assert.Equal(t, cues[i].Text, got[i].Text)
		assert.Equal(t, cues[i].Timestamp, got[i].Timestamp)
	}
	assert.Error(t, outcomes[1].Err)
	// third batch still ran and succeeded
	assert.Equal(t, "ko:english line 20", got[20].Text)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 3, calls)
}

func TestTranslateAll_NumberedResponseAlignment(t *testing.T) {
	fixed := func(ctx context.Context, prompt string) (string, error) {
		return "1. A\n2. B\n3. C", nil
	}

	cues := makeCues(3)
	bt := NewBatchTranslator(fixed, WithProgress(NoProgress))
	got, _ := bt.TranslateAll(context.Background(), cues)

	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Text)
	assert.Equal(t, "B", got[1].Text)
	assert.Equal(t, "C", got[2].Text)
}

func TestTranslateAll_ShortResponseFallsBackPerPosition(t *testing.T) {
	short := func(ctx context.Context, prompt string) (string, error) {
		return "1. 첫째\n2. 둘째\n3.   \n", nil // third line empty after stripping
	}

	cues := makeCues(3)
	bt := NewBatchTranslator(short, WithProgress(NoProgress))
	got, outcomes := bt.TranslateAll(context.Background(), cues)

	require.Len(t, got, 3)
	assert.Equal(t, "첫째", got[0].Text)
	assert.Equal(t, "둘째", got[1].Text)
	assert.Equal(t, cues[2].Text, got[2].Text)
	assert.Equal(t, 2, outcomes[0].Translated)
}

func TestTranslateAll_OverlongResponseTruncated(t *testing.T) {
	chatty := func(ctx context.Context, prompt string) (string, error) {
		return "1. 하나\n2. 둘\n3. 셋\n4. extra commentary", nil
	}

	cues := makeCues(3)
	bt := NewBatchTranslator(chatty, WithProgress(NoProgress))
	got, _ := bt.TranslateAll(context.Background(), cues)

	require.Len(t, got, 3)
	assert.Equal(t, "셋", got[2].Text)
}

func TestTranslateAll_EmptyInput(t *testing.T) {
	bt := NewBatchTranslator(echoTranslator, WithProgress(NoProgress))
	got, outcomes := bt.TranslateAll(context.Background(), nil)
	assert.Empty(t, got)
	assert.Empty(t, outcomes)
}

func TestTranslateAll_CustomBatchSize(t *testing.T) {
	calls := 0
	counting := func(ctx context.Context, prompt string) (string, error) {
		calls++
		return echoTranslator(ctx, prompt)
	}

	bt := NewBatchTranslator(counting, WithBatchSize(4), WithProgress(NoProgress))
	got, _ := bt.TranslateAll(context.Background(), makeCues(9))

	assert.Len(t, got, 9)
	assert.Equal(t, 3, calls) // 4 + 4 + 1
}

func TestBuildPrompt_NumbersCues(t *testing.T) {
	prompt := BuildPrompt([]string{"hello", "world"})
	assert.Contains(t, prompt, "1. hello\n")
	assert.Contains(t, prompt, "2. world\n")
	assert.Contains(t, prompt, "English subtitle texts to Korean")
}

type recordingProgress struct {
	labels    []string
	succeeded []string
	failed    []string
}

func (r *recordingProgress) Start()            {}
func (r *recordingProgress) SetLabel(s string) { r.labels = append(r.labels, s) }
func (r *recordingProgress) Succeed(s string)  { r.succeeded = append(r.succeeded, s) }
func (r *recordingProgress) Fail(s string)     { r.failed = append(r.failed, s) }

func TestTranslateAll_ProgressMessages(t *testing.T) {
	rec := &recordingProgress{}
	factory := func(label string) Progress {
		rec.labels = append(rec.labels, label)
		return rec
	}

	failing := func(ctx context.Context, prompt string) (string, error) {
		return "", fmt.Errorf("quota exceeded")
	}

	bt := NewBatchTranslator(failing, WithProgress(factory))
	bt.TranslateAll(context.Background(), makeCues(3))

	require.Len(t, rec.failed, 1)
	assert.Contains(t, rec.labels[0], "Batch 1/1: Translating 3 subtitles")
	assert.Contains(t, rec.failed[0], "quota exceeded")
	assert.Empty(t, rec.succeeded)
}
