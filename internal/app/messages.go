// Package app contains the root Bubble Tea model of the carousel viewer.
package app

import (
	"time"

	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/ui/pageart"
)

// FolderLoadedMsg carries the result of scanning a folder.
type FolderLoadedMsg struct {
	Folder string
	Items  []media.Item
	Err    error
}

// AutoTickMsg drives the auto-advance clock.
type AutoTickMsg time.Time

// FrameMsg drives settle animations.
type FrameMsg time.Time

// ReleaseMsg ends a wheel or keyboard drag once input went quiet.
// Version discards timers superseded by later input.
type ReleaseMsg struct {
	Version int
}

// PageArtPreparedMsg is sent when async page image preparation completes.
type PageArtPreparedMsg struct {
	Path     string // page this was prepared for (for staleness check)
	Prepared pageart.Prepared
	Err      error
}

// RemoteMsg is a slideshow command received over MPRIS.
type RemoteMsg struct {
	Command mpris.Command
}

// StderrMsg is a line some library wrote to stderr while the TUI was up.
type StderrMsg struct {
	Line string
}

// StatusClearMsg hides the status line unless a newer message replaced it.
type StatusClearMsg struct {
	Version int
}
