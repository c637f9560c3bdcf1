package flex

// ExperimentalFeatures gates behavior that deviates from the baseline
// algorithm. Both default off; a host opts in explicitly per Config.
type ExperimentalFeatures struct {
	// Rounding snaps every resolved layout rectangle to whole pixels after
	// CalculateLayout finishes (§10), accumulating the fractional
	// remainder forward along each axis instead of truncating per-node.
	Rounding bool

	// WebFlexBasis changes flexBasis resolution for a node whose only
	// flex input is a positive `flex` shorthand: content-sized ("auto")
	// instead of 0, which is what it resolves to with the flag off. See
	// DESIGN.md's Open Question 3.
	WebFlexBasis bool
}

// Config bundles the cross-cutting knobs a tree of nodes shares: the
// logger every diagnostic is routed through, experimental toggles, and an
// optional custom node allocator. One Config may back many trees.
type Config struct {
	Logger       Logger
	Experimental ExperimentalFeatures

	newNode       func() *Node
	instanceCount int
}

// DefaultConfig returns a Config with a StdLogger at LogWarn and every
// experimental feature off.
func DefaultConfig() *Config {
	return &Config{Logger: NewStdLogger(LogWarn)}
}

// SetNodeAllocator installs a custom Node allocator used by every
// subsequent NewNode call against cfg. It may only be changed while cfg
// owns zero live nodes (InstanceCount() == 0) — swapping allocators
// mid-tree would leave existing nodes built by the old one.
func (c *Config) SetNodeAllocator(f func() *Node) {
	if c.instanceCount != 0 {
		c.logf(LogError, "Config.SetNodeAllocator: %d nodes already allocated", c.instanceCount)
		panic("flex: cannot change the node allocator once nodes exist")
	}
	c.newNode = f
}

// InstanceCount reports how many live (un-freed) nodes cfg currently owns.
// Hosts use it in tests to catch leaked nodes across a request/frame.
func (c *Config) InstanceCount() int {
	return c.instanceCount
}

func (c *Config) logf(level LogLevel, format string, args ...any) {
	logger := c.Logger
	if logger == nil {
		logger = NewStdLogger(LogWarn)
	}
	logger.Logf(level, format, args...)
}
