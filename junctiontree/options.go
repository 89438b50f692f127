package junctiontree

import "go.uber.org/zap"

// Option configures a single BuildJunctionTree call. Options are applied
// in the order given; later options override earlier ones.
type Option func(*buildConfig)

// buildConfig aggregates every knob BuildJunctionTree understands. It is
// resolved once per call and never shared across calls.
type buildConfig struct {
	logger   *zap.Logger
	metrics  *Metrics
	validate bool
	buildID  string
}

// newBuildConfig applies deterministic defaults and then opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		logger:   zap.NewNop(),
		metrics:  nil,
		validate: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger attaches a zap.Logger that receives a Debug-level trace for
// each child clique absorbed and an Info-level summary once the build
// completes. Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("junctiontree: WithLogger(nil)")
	}
	return func(cfg *buildConfig) {
		cfg.logger = logger
	}
}

// WithMetrics attaches a Metrics recorder. Panics if metrics is nil.
func WithMetrics(metrics *Metrics) Option {
	if metrics == nil {
		panic("junctiontree: WithMetrics(nil)")
	}
	return func(cfg *buildConfig) {
		cfg.metrics = metrics
	}
}

// WithValidation runs Validate over the elimination tree before
// construction begins, returning every aggregated violation instead of
// just the first malformed node the traversal happens to reach.
func WithValidation() Option {
	return func(cfg *buildConfig) {
		cfg.validate = true
	}
}

// WithBuildID overrides the build's generated correlation ID (used in
// log fields; metrics carry no build label) with an explicit one, so a caller can
// tie a build's logs back to an outer request ID. Panics on empty id.
func WithBuildID(id string) Option {
	if id == "" {
		panic("junctiontree: WithBuildID(\"\")")
	}
	return func(cfg *buildConfig) {
		cfg.buildID = id
	}
}
