package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultWriter is the default subtitle file writer
type DefaultWriter struct{}

// NewWriter creates a new subtitle file writer
func NewWriter() Writer {
	return &DefaultWriter{}
}

// Write writes the document to the specified path in WebVTT format
func (w *DefaultWriter) Write(path string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("subtitle data is empty")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if _, err := writer.WriteString(Render(doc.Header, doc.Cues)); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// Render serializes a header and cue sequence into WebVTT text.
// It is a pure function of its inputs: header, blank line, then per cue
// the verbatim timestamp line, the text, and a blank line.
func Render(header string, cues []Cue) string {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\n")

	for _, cue := range cues {
		b.WriteString(cue.Timestamp)
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}

	return b.String()
}
