package service

import "errors"

// ErrNoCues is returned when a parsed file yields zero valid cue blocks.
// The pipeline reports it before any translation call is made.
var ErrNoCues = errors.New("no subtitles found in the file")
