//go:build !linux

package mpris

import "log/slog"

// Adapter never receives commands on non-Linux platforms.
type Adapter struct {
	*remote
}

// New returns an inert adapter on non-Linux platforms.
func New(_ *slog.Logger) (*Adapter, error) {
	return &Adapter{remote: newRemote()}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
