package indicator

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for non-positive page counts,
	// non-positive collapsed widths or negative spacing.
	ErrInvalidConfiguration = errors.New("invalid indicator configuration")

	// ErrOutOfRange is returned when a page index or fractional page lies
	// outside the control's pages. The engine state is left untouched.
	ErrOutOfRange = errors.New("page out of range")

	// ErrNotLaidOut is returned by updates issued before SetAvailableWidth.
	// The update is dropped; the host is expected to retry after layout.
	ErrNotLaidOut = errors.New("indicator not laid out")
)
