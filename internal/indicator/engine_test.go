package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// newLaidOut builds the 5-page control used throughout: collapsed width 10,
// spacing 3, laid out in 310 units, so the expanded width is 258.
func newLaidOut(t *testing.T) *Engine {
	t.Helper()
	e, err := New(10, 5)
	require.NoError(t, err)
	_, err = e.SetAvailableWidth(310)
	require.NoError(t, err)
	return e
}

func requireSegment(t *testing.T, st State, i int, width, fill float64) {
	t.Helper()
	seg, ok := st.Segment(i)
	require.True(t, ok, "segment %d missing", i)
	assert.InDelta(t, width, seg.Width, delta, "segment %d width", i)
	assert.InDelta(t, fill, seg.Fill, delta, "segment %d fill", i)
}

func TestNew_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		collapsed float64
		pages     int
		opts      []Option
	}{
		{name: "zero pages", collapsed: 10, pages: 0},
		{name: "negative pages", collapsed: 10, pages: -2},
		{name: "zero collapsed width", collapsed: 0, pages: 5},
		{name: "negative collapsed width", collapsed: -1, pages: 5},
		{name: "NaN collapsed width", collapsed: math.NaN(), pages: 5},
		{name: "negative spacing", collapsed: 10, pages: 5, opts: []Option{WithSpacing(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.collapsed, tt.pages, tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
			assert.Nil(t, e)
		})
	}
}

func TestNew_TotalCollapsedWidth(t *testing.T) {
	e, err := New(10, 5)
	require.NoError(t, err)
	assert.InDelta(t, 62, e.TotalCollapsedWidth(), delta)

	e, err = New(2, 4, WithSpacing(1))
	require.NoError(t, err)
	assert.InDelta(t, 11, e.TotalCollapsedWidth(), delta)
}

func TestUpdatesBeforeLayout_ReturnNotLaidOut(t *testing.T) {
	e, err := New(10, 5)
	require.NoError(t, err)
	before := e.State()

	_, err = e.UpdateByFraction(0.5)
	assert.ErrorIs(t, err, ErrNotLaidOut)

	_, err = e.UpdateSegments(1, 0.5)
	assert.ErrorIs(t, err, ErrNotLaidOut)

	_, err = e.Select(2)
	assert.ErrorIs(t, err, ErrNotLaidOut)

	_, _, err = e.Advance(EndStop)
	assert.ErrorIs(t, err, ErrNotLaidOut)

	assert.True(t, before.Equal(e.State()), "state must not change before layout")
}

func TestSetAvailableWidth_InitialState(t *testing.T) {
	e := newLaidOut(t)

	assert.InDelta(t, 258, e.ExpandedWidth(), delta)
	st := e.State()
	requireSegment(t, st, 0, 258, 1)
	for i := 1; i < 5; i++ {
		requireSegment(t, st, i, 10, 0)
	}
	assert.True(t, st.Idle())
}

func TestSetAvailableWidth_Idempotent(t *testing.T) {
	e := newLaidOut(t)
	_, err := e.Select(3)
	require.NoError(t, err)

	st, err := e.SetAvailableWidth(1000)
	require.NoError(t, err)
	assert.InDelta(t, 258, e.ExpandedWidth(), delta, "second call must not relayout")
	assert.Equal(t, 3, st.ActivePage)
	requireSegment(t, st, 3, 258, 1)
}

func TestSetAvailableWidth_Undersized(t *testing.T) {
	e, err := New(10, 5)
	require.NoError(t, err)

	st, err := e.SetAvailableWidth(20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, e.ExpandedWidth(), e.CollapsedWidth())
	requireSegment(t, st, 0, 10, 1)
}

func TestResize_PreservesVisibleState(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)
	_, err := e.UpdateByFraction(0.5)
	require.NoError(t, err)

	st, err := e.Resize(410)
	require.NoError(t, err)
	assert.InDelta(t, 358, e.ExpandedWidth(), delta)
	requireSegment(t, st, 0, 179, 0.5)
	requireSegment(t, st, 1, 189, 0.5)
}

func TestResize_BeforeLayoutActsAsLayout(t *testing.T) {
	e, err := New(10, 5)
	require.NoError(t, err)

	st, err := e.Resize(310)
	require.NoError(t, err)
	assert.True(t, e.LaidOut())
	requireSegment(t, st, 0, 258, 1)
}

func TestUpdateByFraction_HalfwayRight(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)

	st, err := e.UpdateByFraction(0.5)
	require.NoError(t, err)

	assert.Equal(t, 0, st.Target)
	assert.InDelta(t, 0.5, st.Percent, delta)
	requireSegment(t, st, 0, 129, 0.5)
	requireSegment(t, st, 1, 139, 0.5)
	for i := 2; i < 5; i++ {
		requireSegment(t, st, i, 10, 0)
	}
	assert.True(t, st.Transitioning())
}

func TestUpdateByFraction_LeftUsesSameNeighbor(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionLeft)

	st, err := e.UpdateByFraction(2.25)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Target)
	requireSegment(t, st, 2, 258*0.75, 0.75)
	requireSegment(t, st, 3, 10+258*0.25, 0.25)
	requireSegment(t, st, 1, 10, 0)
}

func TestUpdateByFraction_NoDirectionHasNoNeighbor(t *testing.T) {
	e := newLaidOut(t)

	st, err := e.UpdateByFraction(1.5)
	require.NoError(t, err)

	requireSegment(t, st, 1, 129, 0.5)
	requireSegment(t, st, 2, 10, 0)
	assert.False(t, st.Transitioning())
}

func TestUpdateByFraction_LastPageNeverReferencesMissingSegment(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)

	st, err := e.UpdateByFraction(4.9)
	require.NoError(t, err)

	assert.Equal(t, 4, st.Target)
	assert.Equal(t, 5, st.Len())
	_, ok := st.Segment(5)
	assert.False(t, ok)
	requireSegment(t, st, 4, 258, 1)
}

func TestUpdateByFraction_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fp   float64
	}{
		{"negative", -0.25},
		{"negative whole page", -1},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLaidOut(t)
			before := e.State()

			_, err := e.UpdateByFraction(tt.fp)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.True(t, before.Equal(e.State()))
		})
	}
}

func TestUpdateByFraction_WholePagesAreIdle(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)

	for page := range 5 {
		st, err := e.UpdateByFraction(float64(page))
		require.NoError(t, err)
		requireSegment(t, st, page, 258, 1)
		if page < 4 {
			requireSegment(t, st, page+1, 10+258*0, 0)
		}
	}
}

func TestUpdateSegments_OutputsAlwaysClamped(t *testing.T) {
	directions := []Direction{DirectionNone, DirectionLeft, DirectionRight}
	percents := []float64{-3, -0.01, 0, 0.01, 0.25, 0.5, 0.75, 0.99, 1, 1.5, math.Inf(1), math.Inf(-1)}

	for _, d := range directions {
		for target := range 5 {
			for _, p := range percents {
				e := newLaidOut(t)
				e.SetScrollDirection(d)

				st, err := e.UpdateSegments(target, p)
				require.NoError(t, err)
				for _, seg := range st.Segments {
					assert.GreaterOrEqual(t, seg.Width, e.CollapsedWidth())
					assert.LessOrEqual(t, seg.Width, e.ExpandedWidth())
					assert.GreaterOrEqual(t, seg.Fill, 0.0)
					assert.LessOrEqual(t, seg.Fill, 1.0)
				}
			}
		}
	}
}

func TestUpdateSegments_AtMostTwoLitSegments(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)

	for _, p := range []float64{0, 0.3, 0.6, 1} {
		st, err := e.UpdateSegments(1, p)
		require.NoError(t, err)

		lit := 0
		for _, seg := range st.Segments {
			if seg.Fill > 0 {
				lit++
				assert.Contains(t, []int{1, 2}, seg.Index)
			}
		}
		assert.LessOrEqual(t, lit, 2)
	}
}

func TestUpdateSegments_FullCompletionLightsExactlyOne(t *testing.T) {
	e := newLaidOut(t)

	for target := range 5 {
		st, err := e.UpdateSegments(target, 1)
		require.NoError(t, err)

		full, empty := 0, 0
		for _, seg := range st.Segments {
			switch seg.Fill {
			case 1:
				full++
			case 0:
				empty++
			}
		}
		assert.Equal(t, 1, full)
		assert.Equal(t, 4, empty)
	}
}

func TestUpdateSegments_Idempotent(t *testing.T) {
	e := newLaidOut(t)
	e.SetScrollDirection(DirectionRight)

	first, err := e.UpdateSegments(2, 1)
	require.NoError(t, err)
	second, err := e.UpdateSegments(2, 1)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestUpdateSegments_RejectsBadInput(t *testing.T) {
	e := newLaidOut(t)

	_, err := e.UpdateSegments(5, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = e.UpdateSegments(-1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = e.UpdateSegments(0, math.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestState_IsImmutable(t *testing.T) {
	e := newLaidOut(t)
	first := e.State()
	snapshot := append([]Segment(nil), first.Segments...)

	_, err := e.Select(3)
	require.NoError(t, err)

	assert.Equal(t, snapshot, first.Segments, "earlier state must not change")
	assert.Equal(t, 0, first.ActivePage)
}

func TestSelect(t *testing.T) {
	e := newLaidOut(t)

	st, err := e.Select(3)
	require.NoError(t, err)
	assert.Equal(t, 3, st.ActivePage)
	assert.Equal(t, 3, e.ActivePage())
	requireSegment(t, st, 3, 258, 1)
	requireSegment(t, st, 0, 10, 0)
}

func TestSelect_OutOfRange(t *testing.T) {
	e := newLaidOut(t)
	before := e.State()

	for _, idx := range []int{-1, 5, 99} {
		_, err := e.Select(idx)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	assert.True(t, before.Equal(e.State()))
}

func TestSelect_MatchesAutoAdvanceTerminalState(t *testing.T) {
	tapped := newLaidOut(t)
	tapState, err := tapped.Select(2)
	require.NoError(t, err)

	ticked := newLaidOut(t)
	_, err = ticked.Select(2)
	require.NoError(t, err)
	var last State
	for p := 0.1; p < 1; p += 0.1 {
		last, err = ticked.UpdateSegments(2, p)
		require.NoError(t, err)
	}
	last, err = ticked.UpdateSegments(2, 1)
	require.NoError(t, err)

	tapSeg, _ := tapState.Segment(2)
	tickSeg, _ := last.Segment(2)
	assert.Equal(t, tapSeg, tickSeg)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		policy    EndPolicy
		wantPage  int
		wantMoved bool
	}{
		{"middle page", 1, EndStop, 2, true},
		{"last page stops", 4, EndStop, 4, false},
		{"last page wraps", 4, EndWrap, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLaidOut(t)
			_, err := e.Select(tt.start)
			require.NoError(t, err)

			st, moved, err := e.Advance(tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoved, moved)
			assert.Equal(t, tt.wantPage, st.ActivePage)
			requireSegment(t, st, tt.wantPage, 258, 1)
		})
	}
}

func TestTransitionNeighbor(t *testing.T) {
	tests := []struct {
		target int
		dir    Direction
		want   int
	}{
		{0, DirectionNone, -1},
		{0, DirectionRight, 1},
		{0, DirectionLeft, 1},
		{3, DirectionLeft, 4},
		{4, DirectionRight, 5},
	}
	for _, tt := range tests {
		if got := TransitionNeighbor(tt.target, tt.dir); got != tt.want {
			t.Errorf("TransitionNeighbor(%d, %v) = %d, want %d", tt.target, tt.dir, got, tt.want)
		}
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionNone, "None"},
		{DirectionLeft, "Left"},
		{DirectionRight, "Right"},
		{Direction(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestParseEndPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    EndPolicy
		wantErr bool
	}{
		{"", EndStop, false},
		{"stop", EndStop, false},
		{"wrap", EndWrap, false},
		{"loop", EndStop, true},
	}
	for _, tt := range tests {
		got, err := ParseEndPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEndPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEndPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if err == nil && got.String() != tt.in && tt.in != "" {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
