// Package router holds the navigation capability the landing screen is given.
// Routing itself belongs to whoever implements Navigator.
package router

import (
	"sync"

	"github.com/detectaive/detectaive/internal/game"
)

// Navigator issues a navigation request to an external router.
// Implementations must not block; callers never inspect the outcome.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// Discard is a Navigator that drops every request.
var Discard Navigator = NavigatorFunc(func(string) {})

// Recorder records every path it is asked to navigate to.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

// Navigate appends path to the recording.
func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

// Paths returns a copy of the recorded paths in call order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Handoff hands the terminal over to an external router: it remembers the
// requested target and asks the running program to quit. The home path is
// ignored since the landing screen is home.
type Handoff struct {
	mu     sync.Mutex
	target string
	quit   func()
}

// NewHandoff returns a Handoff with no quit function bound yet.
func NewHandoff() *Handoff {
	return &Handoff{}
}

// Bind sets the function called once a target has been recorded.
func (h *Handoff) Bind(quit func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quit = quit
}

// Navigate records path and triggers the bound quit function.
func (h *Handoff) Navigate(path string) {
	if path == "" || path == game.HomePath {
		return
	}

	h.mu.Lock()
	h.target = path
	quit := h.quit
	h.mu.Unlock()

	if quit != nil {
		quit()
	}
}

// Target returns the last recorded path, or "" when nothing was requested.
func (h *Handoff) Target() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.target
}
