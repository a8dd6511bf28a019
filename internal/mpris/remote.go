package mpris

import (
	"errors"
	"sync"
)

// ErrBusy is returned when the app has not drained earlier commands.
var ErrBusy = errors.New("remote command queue full")

// Command is a slideshow control request received over D-Bus.
type Command int

const (
	CommandNext Command = iota
	CommandPrevious
	CommandPlay
	CommandPause
	CommandPlayPause
	CommandStop
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandPlayPause:
		return "play_pause"
	case CommandStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Status is what remote clients see of the slideshow.
type Status struct {
	Path    string
	Title   string
	Folder  string
	ArtPath string
	Page    int
	Pages   int
	Playing bool // auto-advance running
	Wrap    bool
}

// CanGoNext reports whether a next page exists.
func (s Status) CanGoNext() bool {
	return s.Pages > 1 && (s.Wrap || s.Page < s.Pages-1)
}

// CanGoPrevious reports whether a previous page exists.
func (s Status) CanGoPrevious() bool {
	return s.Pages > 1 && (s.Wrap || s.Page > 0)
}

// remote is the state shared between D-Bus handler goroutines and the UI.
// Handlers only enqueue commands; the UI applies them on its own goroutine.
type remote struct {
	mu       sync.RWMutex
	status   Status
	commands chan Command
}

func newRemote() *remote {
	return &remote{commands: make(chan Command, 16)}
}

func (r *remote) send(c Command) error {
	select {
	case r.commands <- c:
		return nil
	default:
		return ErrBusy
	}
}

// Commands delivers remote requests in arrival order.
func (r *remote) Commands() <-chan Command {
	return r.commands
}

// SetStatus publishes the slideshow state to remote clients.
func (r *remote) SetStatus(s Status) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}

// Status returns the last published state.
func (r *remote) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}
