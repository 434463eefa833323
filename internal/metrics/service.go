package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

type Service struct {
	RecordCacheHits     prometheus.Counter
	RecordCacheMisses   prometheus.Counter
	MatchScans          prometheus.Counter
	BoxscoreCacheHits   prometheus.Counter
	BoxscoreCacheMisses prometheus.Counter
	StoryTransitions    *prometheus.CounterVec
	OpenStories         prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RecordCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_record_cache_hits_total",
			Help: "Team record lookups served from the record cache.",
		}),
		RecordCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_record_cache_misses_total",
			Help: "Team record lookups that had to be computed.",
		}),
		MatchScans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_match_scans_total",
			Help: "Full scans of the match list performed by the standings engine.",
		}),
		BoxscoreCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_boxscore_cache_hits_total",
			Help: "Boxscore lookups served from the per match and team cache.",
		}),
		BoxscoreCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "companion_boxscore_cache_misses_total",
			Help: "Boxscore lookups that generated new rows.",
		}),
		StoryTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "companion_story_transitions_total",
			Help: "Story viewer transitions by triggering event.",
		}, []string{"event"}),
		OpenStories: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "companion_open_stories",
			Help: "Story sessions currently open.",
		}),
	}

	reg.MustRegister(
		s.RecordCacheHits,
		s.RecordCacheMisses,
		s.MatchScans,
		s.BoxscoreCacheHits,
		s.BoxscoreCacheMisses,
		s.StoryTransitions,
		s.OpenStories,
	)

	return s
}

func (s *Service) IncRecordCacheHits() {
	s.RecordCacheHits.Inc()
}

func (s *Service) IncRecordCacheMisses() {
	s.RecordCacheMisses.Inc()
}

func (s *Service) IncMatchScans() {
	s.MatchScans.Inc()
}

func (s *Service) IncBoxscoreCacheHits() {
	s.BoxscoreCacheHits.Inc()
}

func (s *Service) IncBoxscoreCacheMisses() {
	s.BoxscoreCacheMisses.Inc()
}

func (s *Service) IncStoryTransitions(event string) {
	s.StoryTransitions.WithLabelValues(event).Inc()
}

func (s *Service) SetOpenStories(n int) {
	s.OpenStories.Set(float64(n))
}
