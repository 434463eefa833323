package story

import (
	"esports-companion/internal/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBuilder struct {
	mu     sync.Mutex
	slides map[ContentType][]Slide
	calls  int
}

func (b *fixedBuilder) Build(content ContentType, game domain.Game) []Slide {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return b.slides[content]
}

func threeSlides() *fixedBuilder {
	return &fixedBuilder{slides: map[ContentType][]Slide{
		ContentStats: {
			{ID: "stats-kills", Type: ContentStats},
			{ID: "stats-acs", Type: ContentStats},
			{ID: "stats-assists", Type: ContentStats},
		},
		ContentHighlights: {
			{ID: "highlights-1", Type: ContentHighlights},
		},
	}}
}

func TestViewerStartsIdle(t *testing.T) {
	v := NewViewer(threeSlides(), NewManualScheduler(), time.Second)

	snap := v.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Slide)
}

func TestViewerOpenShowsFirstSlide(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, 5*time.Second)

	snap := v.Open(ContentStats, domain.GameValorant)

	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 3, snap.Total)
	require.NotNil(t, snap.Slide)
	assert.Equal(t, "stats-kills", snap.Slide.ID)
	assert.Equal(t, int64(5000), snap.DurationMS)
	assert.Equal(t, 1, sched.Pending())
	assert.Equal(t, 5*time.Second, sched.LastDuration())
}

func TestViewerOpenWithoutSlidesShowsPlaceholder(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(&fixedBuilder{}, sched, time.Second)

	snap := v.Open(ContentLive, domain.GameSmash)

	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, 1, snap.Total)
	require.NotNil(t, snap.Slide)
	assert.Equal(t, "empty", snap.Slide.ID)
	assert.NotEmpty(t, snap.Slide.Placeholder)
}

func TestViewerNextAdvancesAndClosesAfterLast(t *testing.T) {
	closed := 0
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second, WithOnClose(func() { closed++ }))
	v.Open(ContentStats, domain.GameValorant)

	snap := v.Next()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, "stats-acs", snap.Slide.ID)

	snap = v.Next()
	assert.Equal(t, 2, snap.Index)
	assert.Equal(t, 1, sched.Pending())

	snap = v.Next()
	assert.Equal(t, StateClosed, snap.State)
	assert.Nil(t, snap.Slide)
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 1, closed)

	// closed viewers ignore further input
	snap = v.Next()
	assert.Equal(t, StateClosed, snap.State)
	assert.Equal(t, 1, closed)
}

func TestViewerPreviousOnFirstSlideKeepsTimer(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second)
	v.Open(ContentStats, domain.GameValorant)
	scheduled := sched.Scheduled()

	snap := v.Previous()

	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, scheduled, sched.Scheduled())
	assert.Equal(t, 1, sched.Pending())
}

func TestViewerPreviousRestartsTimer(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second)
	v.Open(ContentStats, domain.GameValorant)
	v.Next()
	scheduled := sched.Scheduled()

	snap := v.Previous()

	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, scheduled+1, sched.Scheduled())
	assert.Equal(t, 1, sched.Pending())
}

func TestViewerExpiryAdvances(t *testing.T) {
	closed := 0
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second, WithOnClose(func() { closed++ }))
	v.Open(ContentStats, domain.GameValorant)

	assert.Equal(t, 1, sched.Fire())
	assert.Equal(t, 1, v.Snapshot().Index)

	assert.Equal(t, 1, sched.Fire())
	assert.Equal(t, 2, v.Snapshot().Index)

	assert.Equal(t, 1, sched.Fire())
	assert.Equal(t, StateClosed, v.Snapshot().State)
	assert.Equal(t, 1, closed)

	assert.Equal(t, 0, sched.Fire())
}

func TestViewerIgnoresStaleTimer(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second)
	v.Open(ContentStats, domain.GameValorant)

	// the first timer belongs to slide 0 and was cancelled by Next
	v.Next()
	sched.FireStale(0)

	snap := v.Snapshot()
	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, 1, snap.Index)
}

func TestViewerReopenReplacesSlides(t *testing.T) {
	builder := threeSlides()
	sched := NewManualScheduler()
	v := NewViewer(builder, sched, time.Second)
	v.Open(ContentStats, domain.GameValorant)
	v.Next()

	snap := v.Open(ContentHighlights, domain.GameRocketLeague)

	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, ContentHighlights, snap.Content)
	assert.Equal(t, domain.GameRocketLeague, snap.Game)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, 1, sched.Pending())
	assert.Equal(t, 2, builder.calls)

	// the timer of the previous content is gone
	sched.FireStale(1)
	assert.Equal(t, StateShowing, v.Snapshot().State)
}

func TestViewerReopenAfterClose(t *testing.T) {
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second)
	v.Open(ContentHighlights, domain.GameValorant)
	v.Close()

	snap := v.Open(ContentStats, domain.GameValorant)
	assert.Equal(t, StateShowing, snap.State)
	assert.Equal(t, 3, snap.Total)
}

func TestViewerClose(t *testing.T) {
	closed := 0
	var events []Event
	sched := NewManualScheduler()
	v := NewViewer(threeSlides(), sched, time.Second,
		WithOnClose(func() { closed++ }),
		WithObserver(func(evt Event) { events = append(events, evt) }),
	)
	v.Open(ContentStats, domain.GameValorant)

	snap := v.Close()
	assert.Equal(t, StateClosed, snap.State)
	assert.Equal(t, 0, sched.Pending())

	v.Close()
	assert.Equal(t, 1, closed)
	assert.Equal(t, []Event{EventOpen, EventClose}, events)
}

func TestViewerCloseFromIdle(t *testing.T) {
	closed := 0
	v := NewViewer(threeSlides(), NewManualScheduler(), time.Second, WithOnClose(func() { closed++ }))

	snap := v.Close()

	assert.Equal(t, StateClosed, snap.State)
	assert.Equal(t, 1, closed)
}

func TestViewerObserverMayCallBack(t *testing.T) {
	sched := NewManualScheduler()
	var v *Viewer
	var seen []State
	v = NewViewer(threeSlides(), sched, time.Second, WithObserver(func(Event) {
		seen = append(seen, v.Snapshot().State)
	}))

	v.Open(ContentStats, domain.GameValorant)
	sched.Fire()

	assert.Equal(t, []State{StateShowing, StateShowing}, seen)
}

func TestViewerWithClockScheduler(t *testing.T) {
	done := make(chan struct{})
	v := NewViewer(threeSlides(), NewClockScheduler(), 5*time.Millisecond, WithOnClose(func() { close(done) }))
	v.Open(ContentStats, domain.GameValorant)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("story did not close after its last slide expired")
	}
	assert.Equal(t, StateClosed, v.Snapshot().State)
}

func TestStateText(t *testing.T) {
	for _, s := range []State{StateIdle, StateLoading, StateShowing, StateClosed} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var got State
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}

	var s State
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}
