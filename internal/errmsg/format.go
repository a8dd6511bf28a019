// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Folder operations
	OpFolderScan Op = "scan folder"
	OpFolderOpen Op = "open folder"

	// Page operations
	OpPageLoad    Op = "load page"
	OpPageRender  Op = "render page"
	OpPageSelect  Op = "select page"
	OpPageLayout  Op = "lay out indicator"
	OpPageAdvance Op = "advance page"

	// State operations
	OpPositionLoad Op = "load saved position"
	OpPositionSave Op = "save position"
	OpStateOpen    Op = "open state database"

	// Remote control
	OpRemoteStart Op = "start remote control"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
