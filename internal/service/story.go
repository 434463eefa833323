package service

import (
	"errors"
	"esports-companion/internal/config"
	"esports-companion/internal/constants"
	"esports-companion/internal/domain"
	"esports-companion/internal/metrics"
	"esports-companion/internal/story"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var ErrStoryNotFound = errors.New("story session not found")

// StoryService keeps one story viewer per session. A session is forgotten as
// soon as its viewer closes, whether by the last timer or by the caller.
type StoryService struct {
	builder   story.SlideBuilder
	scheduler story.Scheduler
	duration  time.Duration
	metrics   metrics.Metrics
	logger    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*story.Viewer
}

func NewStoryService(
	cfg *config.Config,
	schedule *ScheduleService,
	standings *StandingsService,
	leaderboard *LeaderboardService,
	scheduler story.Scheduler,
	m metrics.Metrics,
	logger zerolog.Logger,
) *StoryService {
	return &StoryService{
		builder:   story.NewBuilder(schedule, standings, leaderboard, cfg.StoryStatsLimit),
		scheduler: scheduler,
		duration:  cfg.StoryDuration,
		metrics:   m,
		logger:    logger,
		sessions:  make(map[string]*story.Viewer),
	}
}

// Open starts a new session when sessionID is empty. With an id it rebuilds
// that session's slides for the new content and game from the first slide.
func (s *StoryService) Open(sessionID string, content story.ContentType, game domain.Game) (string, story.Snapshot, error) {
	if sessionID != "" {
		v, err := s.lookup(sessionID)
		if err != nil {
			return "", story.Snapshot{}, err
		}
		s.logger.Info().
			Str("session_id", sessionID).
			Str("content", string(content)).
			Str("game", string(game)).
			Msg("story reopened")
		return sessionID, s.reopen(sessionID, v, content, game), nil
	}

	id, err := gonanoid.New(constants.StorySessionIDLength)
	if err != nil {
		return "", story.Snapshot{}, fmt.Errorf("failed to generate session id: %w", err)
	}

	v := story.NewViewer(s.builder, s.scheduler, s.duration,
		story.WithOnClose(func() { s.remove(id) }),
		story.WithObserver(func(evt story.Event) { s.metrics.IncStoryTransitions(string(evt)) }),
	)

	s.mu.Lock()
	s.sessions[id] = v
	open := len(s.sessions)
	s.mu.Unlock()
	s.metrics.SetOpenStories(open)

	s.logger.Info().
		Str("session_id", id).
		Str("content", string(content)).
		Str("game", string(game)).
		Msg("story opened")
	return id, v.Open(content, game), nil
}

// reopen restarts v and makes sure the session stays registered. The last
// slide of the old run can expire between lookup and Open, which closes v and
// removes the session; Open then revives v, so it is registered again unless
// it has closed once more in the meantime.
func (s *StoryService) reopen(sessionID string, v *story.Viewer, content story.ContentType, game domain.Game) story.Snapshot {
	snap := v.Open(content, game)

	s.mu.Lock()
	_, registered := s.sessions[sessionID]
	revived := !registered && v.Snapshot().State != story.StateClosed
	if revived {
		s.sessions[sessionID] = v
	}
	open := len(s.sessions)
	s.mu.Unlock()

	if revived {
		s.metrics.SetOpenStories(open)
		s.logger.Warn().Str("session_id", sessionID).Msg("story session registered again after reopen")
	}
	return snap
}

func (s *StoryService) Next(sessionID string) (story.Snapshot, error) {
	v, err := s.lookup(sessionID)
	if err != nil {
		return story.Snapshot{}, err
	}
	return v.Next(), nil
}

func (s *StoryService) Previous(sessionID string) (story.Snapshot, error) {
	v, err := s.lookup(sessionID)
	if err != nil {
		return story.Snapshot{}, err
	}
	return v.Previous(), nil
}

func (s *StoryService) Close(sessionID string) (story.Snapshot, error) {
	v, err := s.lookup(sessionID)
	if err != nil {
		return story.Snapshot{}, err
	}
	return v.Close(), nil
}

func (s *StoryService) Get(sessionID string) (story.Snapshot, error) {
	v, err := s.lookup(sessionID)
	if err != nil {
		return story.Snapshot{}, err
	}
	return v.Snapshot(), nil
}

// CloseAll stops every open viewer. Used on shutdown so no timer outlives
// the server.
func (s *StoryService) CloseAll() {
	s.mu.Lock()
	viewers := make([]*story.Viewer, 0, len(s.sessions))
	for _, v := range s.sessions {
		viewers = append(viewers, v)
	}
	s.mu.Unlock()

	for _, v := range viewers {
		v.Close()
	}
}

// Sessions counts the open story sessions.
func (s *StoryService) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *StoryService) lookup(sessionID string) (*story.Viewer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, sessionID)
	}
	return v, nil
}

func (s *StoryService) remove(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	open := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetOpenStories(open)
	s.logger.Info().Str("session_id", sessionID).Msg("story closed")
}
