package formstate

// Context describes a single reduction for dispatch hooks.
// Prev and Next are the root states before and after the action; they are
// the same map when the action changed nothing.
type Context struct {
	Action Action
	Prev   State
	Next   State
}

// Changed reports whether the action produced a new root state.
func (c *Context) Changed() bool { return !sameState(c.Prev, c.Next) }
