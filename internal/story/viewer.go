package story

import (
	"esports-companion/internal/domain"
	"fmt"
	"strings"
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateShowing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateShowing:
		return "showing"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "idle":
		*s = StateIdle
	case "loading":
		*s = StateLoading
	case "showing":
		*s = StateShowing
	case "closed":
		*s = StateClosed
	default:
		return fmt.Errorf("unknown story state %q", string(b))
	}
	return nil
}

type Event string

const (
	EventOpen     Event = "open"
	EventNext     Event = "next"
	EventPrevious Event = "previous"
	EventExpire   Event = "expire"
	EventClose    Event = "close"
)

// Snapshot is the read-back view of a viewer. Slide is nil unless Showing.
type Snapshot struct {
	State      State       `json:"state"`
	Content    ContentType `json:"content,omitempty"`
	Game       domain.Game `json:"game,omitempty"`
	Index      int         `json:"index"`
	Total      int         `json:"total"`
	Slide      *Slide      `json:"slide,omitempty"`
	DurationMS int64       `json:"durationMs"`
}

type Option func(*Viewer)

// WithOnClose registers f to run once each time the viewer enters Closed.
func WithOnClose(f func()) Option {
	return func(v *Viewer) { v.onClose = f }
}

// WithObserver registers f to run after every transition.
func WithObserver(f func(Event)) Option {
	return func(v *Viewer) { v.observer = f }
}

// Viewer is the story progression state machine. At most one timer is
// pending at any time. Every start or cancel bumps the generation, and a
// timer callback carrying an old generation is dropped, so a timer that
// fires while being stopped can never advance the story twice.
type Viewer struct {
	builder   SlideBuilder
	scheduler Scheduler
	duration  time.Duration
	onClose   func()
	observer  func(Event)

	mu         sync.Mutex
	state      State
	content    ContentType
	game       domain.Game
	slides     []Slide
	index      int
	timer      Timer
	generation uint64
}

func NewViewer(builder SlideBuilder, scheduler Scheduler, duration time.Duration, opts ...Option) *Viewer {
	v := &Viewer{
		builder:   builder,
		scheduler: scheduler,
		duration:  duration,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Open builds the slides for content and game and shows the first one. It
// is also how a showing viewer switches content or game.
func (v *Viewer) Open(content ContentType, game domain.Game) Snapshot {
	v.mu.Lock()
	v.stopTimerLocked()
	v.state = StateLoading
	v.content = content
	v.game = game

	slides := v.builder.Build(content, game)
	if len(slides) == 0 {
		slides = []Slide{placeholder("empty", content, "No content available")}
	}
	v.slides = slides
	v.showLocked(0)

	snap := v.snapshotLocked()
	v.mu.Unlock()

	v.emit(EventOpen, false)
	return snap
}

// Next moves to the following slide, closing after the last one.
func (v *Viewer) Next() Snapshot {
	v.mu.Lock()
	if v.state != StateShowing {
		snap := v.snapshotLocked()
		v.mu.Unlock()
		return snap
	}
	closed := v.advanceLocked()
	snap := v.snapshotLocked()
	v.mu.Unlock()

	v.emit(EventNext, closed)
	return snap
}

// Previous moves back one slide. On the first slide it does nothing and the
// running timer is left alone.
func (v *Viewer) Previous() Snapshot {
	v.mu.Lock()
	if v.state != StateShowing || v.index == 0 {
		snap := v.snapshotLocked()
		v.mu.Unlock()
		return snap
	}
	v.stopTimerLocked()
	v.showLocked(v.index - 1)
	snap := v.snapshotLocked()
	v.mu.Unlock()

	v.emit(EventPrevious, false)
	return snap
}

func (v *Viewer) Close() Snapshot {
	v.mu.Lock()
	if v.state == StateClosed {
		snap := v.snapshotLocked()
		v.mu.Unlock()
		return snap
	}
	v.closeLocked()
	snap := v.snapshotLocked()
	v.mu.Unlock()

	v.emit(EventClose, true)
	return snap
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *Viewer) expire(generation uint64) {
	v.mu.Lock()
	if generation != v.generation || v.state != StateShowing {
		v.mu.Unlock()
		return
	}
	v.timer = nil
	closed := v.advanceLocked()
	v.mu.Unlock()

	v.emit(EventExpire, closed)
}

func (v *Viewer) advanceLocked() bool {
	v.stopTimerLocked()
	if v.index >= len(v.slides)-1 {
		v.closeLocked()
		return true
	}
	v.showLocked(v.index + 1)
	return false
}

func (v *Viewer) showLocked(index int) {
	v.state = StateShowing
	v.index = index
	v.startTimerLocked()
}

func (v *Viewer) closeLocked() {
	v.stopTimerLocked()
	v.state = StateClosed
}

func (v *Viewer) startTimerLocked() {
	v.generation++
	generation := v.generation
	v.timer = v.scheduler.AfterFunc(v.duration, func() {
		v.expire(generation)
	})
}

func (v *Viewer) stopTimerLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.generation++
}

func (v *Viewer) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      v.state,
		Content:    v.content,
		Game:       v.game,
		Index:      v.index,
		Total:      len(v.slides),
		DurationMS: v.duration.Milliseconds(),
	}
	if v.state == StateShowing && v.index < len(v.slides) {
		slide := v.slides[v.index]
		snap.Slide = &slide
	}
	return snap
}

// emit runs callbacks outside the lock so they may call back into the viewer.
func (v *Viewer) emit(evt Event, closed bool) {
	if v.observer != nil {
		v.observer(evt)
	}
	if closed && v.onClose != nil {
		v.onClose()
	}
}
