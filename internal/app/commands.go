// internal/app/commands.go
package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/ui/pageart"
)

const (
	statusTimeout = 5 * time.Second
	artTimeout    = 15 * time.Second
)

// AutoTickCmd returns a command that sends AutoTickMsg after interval.
func AutoTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AutoTickMsg(t)
	})
}

// FrameCmd returns a command that sends FrameMsg after interval.
func FrameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// ReleaseCmd returns a command that sends ReleaseMsg after the drag idle time.
func ReleaseCmd(after time.Duration, version int) tea.Cmd {
	return tea.Tick(after, func(_ time.Time) tea.Msg {
		return ReleaseMsg{Version: version}
	})
}

// StatusClearCmd returns a command that hides the status line later.
func StatusClearCmd(version int) tea.Cmd {
	return tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return StatusClearMsg{Version: version}
	})
}

// LoadFolderCmd scans folder in the background.
func LoadFolderCmd(folder string) tea.Cmd {
	return func() tea.Msg {
		items, err := media.Scan(folder)
		return FolderLoadedMsg{Folder: folder, Items: items, Err: err}
	}
}

// PrepareArtCmd decodes and resizes the page image off the UI goroutine.
func PrepareArtCmd(r *pageart.Renderer, item media.Item) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), artTimeout)
		defer cancel()

		p, err := r.Prepare(ctx, item)
		return PageArtPreparedMsg{Path: item.Path, Prepared: p, Err: err}
	}
}

// WaitForRemote waits for the next MPRIS command.
func WaitForRemote(ch <-chan mpris.Command) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return RemoteMsg{Command: c}
	}
}

// WaitForStderr waits for the next captured stderr line.
func WaitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// NotifyCmd sends a desktop notification off the UI goroutine. Failures are
// only logged.
func NotifyCmd(n notify.Notifier, notif notify.Notification, logger *slog.Logger) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := n.Notify(notif); err != nil {
			logger.Warn("desktop notification failed", "error", err)
		}
		return nil
	}
}
