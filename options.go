package cubesolver

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	maxDepth      int
	nodeBudget    int64
	checkInterval int64
	workers       int
}

func defaultConfig() *config {
	return &config{
		maxDepth:      20,
		nodeBudget:    0, // unlimited
		checkInterval: 1024,
		workers:       1,
	}
}

// WithMaxDepth sets the deepest iteration the solver will run.
// Twenty quarter/half turns suffice for any reachable state, so the
// default is 20; lower values trade completeness for bounded work.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithNodeBudget caps the total number of search nodes visited across
// all depth iterations. When the budget is exceeded the solver stops
// and reports StatusExhausted with the statistics gathered so far.
// Zero means unlimited.
func WithNodeBudget(nodes int64) Option {
	return func(c *config) {
		if nodes >= 0 {
			c.nodeBudget = nodes
		}
	}
}

// WithCheckInterval sets how many nodes are expanded between
// cancellation and budget checks. The search is CPU-bound, so these
// checks are cooperative rather than interrupt-driven.
func WithCheckInterval(nodes int64) Option {
	return func(c *config) {
		if nodes > 0 {
			c.checkInterval = nodes
		}
	}
}

// WithWorkers fans the first-ply branches of each depth iteration out
// to the given number of goroutines. Every worker searches its own
// clone of the input cube, so no locking of cube state is needed; the
// first verified solution wins.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}
