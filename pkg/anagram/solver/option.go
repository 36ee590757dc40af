package solver

// Option configures a Solve call via the functional-options pattern: a
// private config struct, never exported, mutated only through With*
// constructors.
type Option func(*config)

type config struct {
	limit            int
	allowRepeat      bool
	prioritizeSoftNo bool
	memoDisabled     bool
}

func defaultConfig() *config {
	return &config{limit: 5}
}

// WithLimit caps the number of cost-tied optimal trees returned. 0
// means unlimited.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// WithAllowRepeat enables the Repeat node at two-word sub-problems.
func WithAllowRepeat(allow bool) Option {
	return func(c *config) { c.allowRepeat = allow }
}

// WithPrioritizeSoftNo swaps the cost algebra's field precedence so
// that every No-answer (hard or soft) dominates hard-only No-answers.
func WithPrioritizeSoftNo(prioritize bool) Option {
	return func(c *config) { c.prioritizeSoftNo = prioritize }
}

// WithMemoDisabled turns off the memoization cache. It exists for
// testable property 8 (memoization soundness): the cost returned must
// be identical with or without it.
func WithMemoDisabled() Option {
	return func(c *config) { c.memoDisabled = true }
}
