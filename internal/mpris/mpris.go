//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Adapter exposes the slideshow over D-Bus as an MPRIS player.
type Adapter struct {
	*remote
	server *server.Server
	logger *slog.Logger
}

// New creates and starts a new MPRIS adapter.
func New(logger *slog.Logger) (*Adapter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Adapter{
		remote: newRemote(),
		logger: logger.With(slog.String("component", "mpris")),
	}
	a.server = server.NewServer("reel", &rootAdapter{}, &playerAdapter{r: a.remote})

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("mpris listen stopped", "error", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

// Quit is refused; the terminal session owns the process lifecycle.
func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Reel", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"image/jpeg", "image/png", "image/webp", "image/gif"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Every control
// becomes a Command for the UI; properties come from the published Status.
type playerAdapter struct {
	r *remote
}

func (p *playerAdapter) Next() error      { return p.r.send(CommandNext) }
func (p *playerAdapter) Previous() error  { return p.r.send(CommandPrevious) }
func (p *playerAdapter) Pause() error     { return p.r.send(CommandPause) }
func (p *playerAdapter) PlayPause() error { return p.r.send(CommandPlayPause) }
func (p *playerAdapter) Stop() error      { return p.r.send(CommandStop) }
func (p *playerAdapter) Play() error      { return p.r.send(CommandPlay) }

// Pages have no timeline to seek in.
func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.r.Status()
	switch {
	case s.Pages == 0:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.r.Status()
	if s.Path == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatPageID(s.Path)),
		Title:       s.Title,
		Album:       s.Folder,
		TrackNumber: s.Page + 1,
	}
	if s.ArtPath != "" {
		meta.ArtUrl = "file://" + s.ArtPath
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetVolume(_ float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) { return 0, nil }

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) { return p.r.Status().CanGoNext(), nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.r.Status().CanGoPrevious(), nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.r.Status().Pages > 0, nil }

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.r.Status().Wrap {
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus is read-only; the end policy comes from the config file.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error { return nil }

func formatPageID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Page/%x", h.Sum64())
}
