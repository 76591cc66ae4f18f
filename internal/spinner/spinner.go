// Package spinner implements a cancelable terminal progress animation.
// One rendering goroutine redraws the current line in place while a
// long-running call blocks; Stop joins the goroutine before returning so
// final status lines never race with animation frames.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	// DefaultInterval is the delay between animation frames
	DefaultInterval = 80 * time.Millisecond
)

// DotFrames is the default cyclic frame sequence
var DotFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LineFrames is a plain ASCII alternative
var LineFrames = []string{"-", "\\", "|", "/"}

// Spinner renders a cyclic animation next to a mutable label.
// All writes to the output stream are serialized by a single mutex.
type Spinner struct {
	mu      sync.Mutex
	label   string
	lastLen int
	running bool
	stopCh  chan struct{}

	frames   []string
	interval time.Duration
	stream   io.Writer
	animate  bool

	wg sync.WaitGroup
}

// Option configures a Spinner
type Option func(*Spinner)

// WithWriter directs output to w. Animation is disabled unless w is a
// terminal; use WithAnimation after this option to force it.
func WithWriter(w io.Writer) Option {
	return func(s *Spinner) {
		s.stream = w
		s.animate = isTerminal(w)
	}
}

// WithAnimation forces the animation loop on or off
func WithAnimation(on bool) Option {
	return func(s *Spinner) {
		s.animate = on
	}
}

// WithFrames replaces the frame sequence
func WithFrames(frames []string) Option {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

// WithInterval sets the frame interval
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New creates a spinner with the given label. By default it writes to
// stdout and animates only when stdout is a terminal.
func New(label string, opts ...Option) *Spinner {
	s := &Spinner{
		label:    label,
		frames:   DotFrames,
		interval: DefaultInterval,
		stream:   os.Stdout,
		animate:  isTerminal(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLabel updates the displayed label; the rendering loop picks up the
// new text on its next frame.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
}

// Start transitions the spinner to running and spawns the rendering loop.
// Calling Start while already running is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	animate := s.animate
	if animate {
		fmt.Fprint(s.stream, hideCursor)
	}
	s.mu.Unlock()

	if animate {
		s.wg.Add(1)
		go s.loop(s.stopCh)
	}
}

// Stop signals the rendering loop to exit, waits for it to finish, clears
// the rendered line, and restores the cursor. The join guarantees no frame
// is written after Stop returns. Stop is idempotent.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	animate := s.animate
	s.mu.Unlock()

	s.wg.Wait()

	if animate {
		s.mu.Lock()
		s.render("")
		fmt.Fprint(s.stream, "\r")
		s.lastLen = 0
		fmt.Fprint(s.stream, showCursor)
		s.mu.Unlock()
	}
}

// Succeed stops the spinner and prints a final success line
func (s *Spinner) Succeed(message string) {
	s.Stop()
	s.mu.Lock()
	fmt.Fprintf(s.stream, "%s %s\n", text.FgGreen.Sprint("✔"), message)
	s.mu.Unlock()
}

// Fail stops the spinner and prints a final failure line
func (s *Spinner) Fail(message string) {
	s.Stop()
	s.mu.Lock()
	fmt.Fprintf(s.stream, "%s %s\n", text.FgRed.Sprint("✖"), message)
	s.mu.Unlock()
}

// Run wraps fn in the spinner's lifecycle: the spinner starts before fn
// runs, fails with the error message when fn returns an error, and
// succeeds with doneMessage otherwise. The cursor is always restored.
func (s *Spinner) Run(doneMessage string, fn func() error) error {
	s.Start()
	if err := fn(); err != nil {
		s.Fail(err.Error())
		return err
	}
	s.Succeed(doneMessage)
	return nil
}

func (s *Spinner) loop(stopCh <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		s.mu.Lock()
		s.render(s.frames[i%len(s.frames)] + " " + s.label)
		s.mu.Unlock()
		i++

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

// render redraws the current line in place, padding to the previous width
// so a shorter line leaves no stray characters. Callers must hold s.mu.
func (s *Spinner) render(line string) {
	width := utf8.RuneCountInString(line)
	pad := s.lastLen - width
	if pad < 0 {
		pad = 0
	}
	fmt.Fprint(s.stream, "\r"+line+strings.Repeat(" ", pad))
	s.lastLen = width
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
