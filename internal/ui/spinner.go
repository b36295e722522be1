package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows a small animation while a blocking call is in flight.
// Start and Stop must be called from the same goroutine.
type Spinner struct {
	w       io.Writer
	message string
	done    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{w: w, message: message}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		i := 0
		for {
			select {
			case <-s.done:
				fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
				return
			default:
				fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

// Stop halts the animation and erases the line. Safe to call more than
// once.
func (s *Spinner) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.done)
	s.wg.Wait()
}
