package notify

import "log/slog"

// nopNotifier drops notifications, logging each one at debug level.
type nopNotifier struct {
	logger *slog.Logger
}

func newNop(logger *slog.Logger) *nopNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &nopNotifier{logger: logger}
}

func (n *nopNotifier) Notify(notif Notification) (uint32, error) {
	n.logger.Debug("notification dropped", "title", notif.Title, "body", notif.Body)
	return 0, nil
}

func (n *nopNotifier) Close(uint32) error {
	return nil
}
