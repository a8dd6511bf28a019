package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder string
	Image  string
	Video  string
	Audio  string
	Paused string
	Auto   string
	Wrap   string
}

var (
	nerdIcons = Icons{
		Folder: "\uf07b ",    // nf-fa-folder
		Image:  "\uf03e ",    // nf-fa-image
		Video:  "\uf03d ",    // nf-fa-video_camera
		Audio:  "\uf001 ",    // nf-fa-music
		Paused: "\uf04c",     // nf-fa-pause
		Auto:   "\uf04b",     // nf-fa-play
		Wrap:   "\U000f0456", // nf-md-repeat
	}

	unicodeIcons = Icons{
		Folder: "📁 ",
		Image:  "🖼 ",
		Video:  "🎞 ",
		Audio:  "🎵 ",
		Paused: "⏸",
		Auto:   "▶",
		Wrap:   "🔁",
	}

	noneIcons = Icons{
		Folder: "/",
		Image:  "",
		Video:  "",
		Audio:  "",
		Paused: "paused",
		Auto:   "auto",
		Wrap:   "[R]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Folder returns the folder indicator.
// For "none" style, this is a suffix ("/").
// For other styles, this is a prefix icon.
func Folder() string {
	return current.Folder
}

// IsPrefix returns true if the folder icon should be prepended.
func IsPrefix() bool {
	return current != noneIcons
}

// FormatDir formats a directory name with the appropriate icon.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// ForKind returns the prefix icon for a media kind ("image", "video",
// "audio"), empty for anything else.
func ForKind(kind string) string {
	switch kind {
	case "image":
		return current.Image
	case "video":
		return current.Video
	case "audio":
		return current.Audio
	default:
		return ""
	}
}

// FormatPage formats a page file name with the icon of its kind.
func FormatPage(kind, name string) string {
	return ForKind(kind) + name
}

// Paused returns the paused-slideshow marker.
func Paused() string {
	return current.Paused
}

// Auto returns the running-slideshow marker.
func Auto() string {
	return current.Auto
}

// Wrap returns the marker for a slideshow that wraps around.
func Wrap() string {
	return current.Wrap
}
