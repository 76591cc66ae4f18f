package subtitle

import "golang.org/x/text/language"

// Reader is the interface for reading subtitle files
type Reader interface {
	Read() (*Document, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, doc *Document) error
}

// Cue represents a single timestamped subtitle entry.
// Timestamp holds the raw "<start> --> <end>" line verbatim and is never
// modified by any stage of the pipeline. Text holds one or more
// newline-joined lines and is never empty for a parsed cue.
type Cue struct {
	Timestamp string
	Text      string
}

// Document represents a parsed WebVTT file
type Document struct {
	Header   string // first block of the file, "WEBVTT" plus optional metadata
	Cues     []Cue  // ordered as they appear in the file
	Language language.Tag
}
