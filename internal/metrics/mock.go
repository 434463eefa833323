package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	recordCacheHits     int
	recordCacheMisses   int
	matchScans          int
	boxscoreCacheHits   int
	boxscoreCacheMisses int
	storyTransitions    map[string]int
	openStories         int
}

func NewMock() *Mock {
	return &Mock{
		storyTransitions: make(map[string]int),
	}
}

func (m *Mock) IncRecordCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCacheHits++
}

func (m *Mock) IncRecordCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCacheMisses++
}

func (m *Mock) IncMatchScans() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchScans++
}

func (m *Mock) IncBoxscoreCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boxscoreCacheHits++
}

func (m *Mock) IncBoxscoreCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boxscoreCacheMisses++
}

func (m *Mock) IncStoryTransitions(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storyTransitions[event]++
}

func (m *Mock) SetOpenStories(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openStories = n
}

func (m *Mock) RecordCacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordCacheHits
}

func (m *Mock) RecordCacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordCacheMisses
}

// MatchScans returns the number of times IncMatchScans was called.
func (m *Mock) MatchScans() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchScans
}

func (m *Mock) BoxscoreCacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boxscoreCacheHits
}

func (m *Mock) BoxscoreCacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boxscoreCacheMisses
}

// StoryTransitions returns how often the given event was recorded.
func (m *Mock) StoryTransitions(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storyTransitions[event]
}

func (m *Mock) OpenStories() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openStories
}
