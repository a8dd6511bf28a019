// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"net/url"
	"path/filepath"

	"github.com/dustin/go-humanize/english"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Transient  bool    // keep out of the server's notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

const (
	appName      = "Reel"
	desktopEntry = "reel"
)

// iconFields splits Icon into the app_icon argument and the image-path hint.
// An image file travels as a file URI in the hint so the server shows the
// page itself; anything else is an icon name.
func iconFields(icon string) (appIcon, imagePath string) {
	if icon == "" {
		return "", ""
	}
	if !filepath.IsAbs(icon) {
		return icon, ""
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(icon)}
	return desktopEntry, u.String()
}

// finishedTimeout is how long the end-of-slideshow notification stays up, in ms.
const finishedTimeout = 5000

// SlideshowFinished describes a slideshow that reached its last page.
// icon is an image path shown by the notification server, may be empty.
func SlideshowFinished(folder string, pages int, icon string) Notification {
	return Notification{
		Title:   "Slideshow finished",
		Body:    filepath.Base(folder) + " · " + english.Plural(pages, "page", ""),
		Icon:    icon,
		Timeout: finishedTimeout,
		Urgency: UrgencyLow,
		// Nothing to come back to once the next slideshow starts.
		Transient: true,
	}
}
