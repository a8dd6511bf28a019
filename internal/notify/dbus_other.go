//go:build !linux

package notify

import "log/slog"

// New returns a notifier that only logs; desktop notifications need D-Bus.
func New(logger *slog.Logger) (Notifier, error) {
	return newNop(logger), nil
}
