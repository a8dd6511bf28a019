package pageart

import (
	"os"
	"strings"
)

// EnvProtocol overrides both detection and configuration when set.
const EnvProtocol = "REEL_IMAGE_PROTOCOL"

// Detect returns the ImageProtocol to use, or nil when images are disabled
// or unsupported. preference comes from the config file ("auto", "kitty",
// "sixel" or "none"); the REEL_IMAGE_PROTOCOL environment variable wins
// over it.
func Detect(preference string) ImageProtocol {
	if override := os.Getenv(EnvProtocol); override != "" {
		preference = override
	}

	switch strings.ToLower(preference) {
	case "kitty":
		return NewKittyProtocol()
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return NewKittyProtocol()
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour does not support Kitty graphics, but env vars of a parent
	// Kitty-capable terminal can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics since 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	// xterm only has sixel when built with it; TERM=xterm is the best hint
	// left once Kitty was ruled out.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
