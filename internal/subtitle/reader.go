package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// arrow is the WebVTT timing separator that marks a timestamp line
const arrow = "-->"

// defaultHeader is used when the input file carries no WEBVTT block
const defaultHeader = "WEBVTT"

var blockSplitter = regexp.MustCompile(`\n\s*\n`)

// DefaultReader is the default subtitle file reader
type DefaultReader struct {
	path string
}

// NewReader creates a new subtitle file reader
func NewReader(
	path string,
) Reader {
	return &DefaultReader{
		path: path,
	}
}

// Read reads and parses a WebVTT subtitle file
func (r *DefaultReader) Read() (*Document, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file does not exist: %s", r.path)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	header, cues := Parse(string(raw))

	return &Document{
		Header:   header,
		Cues:     cues,
		Language: detectLanguage(cues),
	}, nil
}

// Parse splits raw WebVTT text into a header and an ordered cue sequence.
// Parsing is permissive: malformed blocks are skipped rather than reported,
// since odd formatting is common in real-world subtitle files. An empty cue
// sequence is a valid result.
func Parse(raw string) (string, []Cue) {
	blocks := blockSplitter.Split(strings.TrimSpace(raw), -1)

	header := defaultHeader
	cueBlocks := blocks
	if len(blocks) > 0 && strings.HasPrefix(blocks[0], defaultHeader) {
		header = blocks[0]
		cueBlocks = blocks[1:]
	}

	var cues []Cue
	for _, block := range cueBlocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			continue
		}

		var timestamp, text string
		switch {
		case strings.Contains(lines[0], arrow):
			timestamp = lines[0]
			text = strings.Join(lines[1:], "\n")
		case len(lines) >= 3 && strings.Contains(lines[1], arrow):
			// first line is a cue identifier, which we do not carry over
			timestamp = lines[1]
			text = strings.Join(lines[2:], "\n")
		default:
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		cues = append(cues, Cue{
			Timestamp: timestamp,
			Text:      text,
		})
	}

	return header, cues
}

// detectLanguage detects the dominant language across cue texts
func detectLanguage(cues []Cue) language.Tag {
	if len(cues) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)

	for _, cue := range cues {
		lang := whatlanggo.DetectLang(cue.Text).Iso6391()
		langMap[lang]++
	}

	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	return language.All.Make(topLang)
}
