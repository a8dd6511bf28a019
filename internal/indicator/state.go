package indicator

// Direction is the direction of travel reported by the scroll host.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Segment is one page's indicator state.
type Segment struct {
	Index int
	Width float64 // within [CollapsedWidth, ExpandedWidth]
	Fill  float64 // within [0, 1]
}

// State is a snapshot of every segment after an update.
// A State is never modified once returned; each update builds a new one.
type State struct {
	Segments   []Segment
	ActivePage int
	Direction  Direction

	// Target and Percent are the arguments of the update that produced
	// this state.
	Target  int
	Percent float64

	CollapsedWidth float64
	ExpandedWidth  float64
}

// Len returns the number of segments.
func (s State) Len() int {
	return len(s.Segments)
}

// Segment returns the segment at index i, or false if there is none.
func (s State) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(s.Segments) {
		return Segment{}, false
	}
	return s.Segments[i], true
}

// Transitioning reports whether a segment other than the target carries fill,
// i.e. the control is mid-way between two pages.
func (s State) Transitioning() bool {
	for _, seg := range s.Segments {
		if seg.Index != s.Target && seg.Fill > 0 {
			return true
		}
	}
	return false
}

// Idle reports whether the target page is fully expanded and nothing else is lit.
func (s State) Idle() bool {
	return s.Percent == 1 && !s.Transitioning()
}

// Equal reports whether two states hold the same segments and bookkeeping.
func (s State) Equal(o State) bool {
	if s.ActivePage != o.ActivePage || s.Direction != o.Direction ||
		s.Target != o.Target || s.Percent != o.Percent ||
		s.CollapsedWidth != o.CollapsedWidth || s.ExpandedWidth != o.ExpandedWidth ||
		len(s.Segments) != len(o.Segments) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}
