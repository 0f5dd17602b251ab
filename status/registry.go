package status

import "sync/atomic"

// Metric keys published by the rally engine
const (
	KeyFrame        = "engine.frame"
	KeyBallSpeed    = "ball.speed"
	KeyRallyHits    = "rally.hits"
	KeyLongestRally = "rally.longest"
	KeyPoints       = "match.points"
	KeyMatches      = "match.count"
)

// Registry is the metrics facade shared between the engine and a HUD
// The engine caches pointers at construction and stores every frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
