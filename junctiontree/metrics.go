package junctiontree

import "github.com/prometheus/client_golang/prometheus"

// Metrics records the scheduling-relevant shape of a junction-tree
// build: how many cliques it produced, how expensive each one looks
// (ProblemSize, a monotone integer estimate a downstream scheduler can
// use to balance work), and how long the build itself took. WithMetrics
// panics on nil, so a nil *Metrics only arises as buildConfig's default;
// the recorder hooks are still called on it and return immediately,
// which means "record nothing".
type Metrics struct {
	cliquesBuilt  prometheus.Counter
	problemSize   prometheus.Histogram
	buildDuration prometheus.Histogram
}

// NewMetrics registers a fresh Metrics recorder on reg. Passing a
// prometheus.NewRegistry() per test keeps concurrent builds (and
// concurrent test packages) from colliding on the default global
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cliquesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "junctiontree",
			Name:      "cliques_built_total",
			Help:      "Number of clique nodes produced across all BuildJunctionTree calls.",
		}),
		problemSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "junctiontree",
			Name:      "clique_problem_size",
			Help:      "Per-clique ProblemSize estimate at the moment a clique was finalized.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "junctiontree",
			Name:      "build_duration_seconds",
			Help:      "Wall-clock time of a complete BuildJunctionTree call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.cliquesBuilt, m.problemSize, m.buildDuration)
	return m
}

// recordClique is called once per finalized clique, from the post-visit
// step that sets JunctionTreeNode.problemSize.
func (m *Metrics) recordClique(problemSize int) {
	if m == nil {
		return
	}
	m.cliquesBuilt.Inc()
	m.problemSize.Observe(float64(problemSize))
}

// recordBuild is called once per completed BuildJunctionTree call.
func (m *Metrics) recordBuild(seconds float64) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(seconds)
}
