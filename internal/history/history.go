// Package history tracks the current path of one navigation session.
//
// A History is the only owner of the current path. It changes only through
// Navigate, Replace, Back, and Forward.
package history

import (
	"sync"

	"github.com/vango-dev/navshell/internal/errors"
	"github.com/vango-dev/navshell/pkg/routepath"
)

// History is a stack of visited paths with a cursor.
// It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []string
	index   int
}

// New creates a History positioned at initial. An initial path Navigate
// would reject starts the history at "/".
func New(initial string) *History {
	path, err := Canonical(initial)
	if err != nil {
		path = "/"
	}
	return &History{entries: []string{path}}
}

// Current returns the path at the cursor.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Navigate pushes path and returns its canonical form. Entries ahead of
// the cursor are discarded. Navigating to the current path pushes nothing.
func (h *History) Navigate(path string) (string, error) {
	canonical, err := Canonical(path)
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.entries[h.index] == canonical {
		return canonical, nil
	}
	h.entries = append(h.entries[:h.index+1], canonical)
	h.index++
	return canonical, nil
}

// Replace overwrites the entry at the cursor without touching the rest.
func (h *History) Replace(path string) (string, error) {
	canonical, err := Canonical(path)
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = canonical
	return canonical, nil
}

// Back moves the cursor one entry back. It reports false at the start.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves the cursor one entry forward. It reports false at the end.
func (h *History) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Canonical validates a navigation target and returns its canonical path
// without query. Invalid targets are E301 errors.
func Canonical(path string) (string, error) {
	target, err := routepath.NavTarget(path)
	if err != nil {
		return "", errors.New("E301").WithDetailf("%q", path).Wrap(err)
	}
	return routepath.StripQuery(target), nil
}
