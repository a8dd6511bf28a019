//go:build linux

package notify

import (
	"os"
	"testing"
)

func TestHints(t *testing.T) {
	tests := []struct {
		name      string
		notif     Notification
		imagePath string
		want      map[string]any
	}{
		{
			name:  "plain",
			notif: Notification{Title: "Reel", Urgency: UrgencyNormal},
			want: map[string]any{
				"urgency":       byte(1),
				"desktop-entry": "reel",
			},
		},
		{
			name:      "finished slideshow",
			notif:     SlideshowFinished("/srv/photos/Holiday", 3, "/srv/photos/Holiday/03.jpg"),
			imagePath: "file:///srv/photos/Holiday/03.jpg",
			want: map[string]any{
				"urgency":       byte(0),
				"desktop-entry": "reel",
				"image-path":    "file:///srv/photos/Holiday/03.jpg",
				"transient":     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hints(tt.notif, tt.imagePath)
			if len(got) != len(tt.want) {
				t.Fatalf("hints = %v, want %d entries", got, len(tt.want))
			}
			for k, v := range tt.want {
				h, ok := got[k]
				if !ok {
					t.Errorf("missing hint %q", k)
					continue
				}
				if h.Value() != v {
					t.Errorf("hint %q = %v, want %v", k, h.Value(), v)
				}
			}
		})
	}
}

func TestNotifyFinishedSlideshow(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New(nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, ok := notifier.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}

	notif := SlideshowFinished(t.TempDir(), 2, "")
	notif.Timeout = 1000
	id, err := notifier.Notify(notif)
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id == 0 {
		t.Error("Notify() returned id=0, expected non-zero")
	}

	// Replacing keeps the id, so a rescan updates the same bubble.
	notif.ReplacesID = id
	notif.Body = "Holiday · 3 pages"
	id2, err := notifier.Notify(notif)
	if err != nil {
		t.Fatalf("replacing Notify() error: %v", err)
	}
	if id2 != id {
		t.Errorf("replacing notification got id=%d, want id=%d", id2, id)
	}

	if err := notifier.Close(id2); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
