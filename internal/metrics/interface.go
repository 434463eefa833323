package metrics

// Metrics decouples the engine from the prometheus implementation.
type Metrics interface {
	IncRecordCacheHits()
	IncRecordCacheMisses()
	IncMatchScans()
	IncBoxscoreCacheHits()
	IncBoxscoreCacheMisses()
	IncStoryTransitions(event string)
	SetOpenStories(n int)
}
