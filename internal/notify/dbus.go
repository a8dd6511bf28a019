//go:build linux

package notify

import (
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Without a session bus it returns a notifier that only logs what it drops.
func New(logger *slog.Logger) (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		nop := newNop(logger)
		nop.logger.Info("desktop notifications unavailable", "error", err)
		return nop, nil
	}

	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusNotifier{conn: conn, obj: obj}, nil
}

// hints builds the freedesktop hints for notif.
func hints(notif Notification, imagePath string) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if imagePath != "" {
		h["image-path"] = dbus.MakeVariant(imagePath)
	}
	if notif.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	appIcon, imagePath := iconFields(notif.Icon)

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		appIcon,
		notif.Title,
		notif.Body,
		[]string{},
		hints(notif, imagePath),
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}
