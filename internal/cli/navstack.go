package cli

// NavigationStack is the screen history. Every screen pushes itself at
// construction; forward transitions only record a pending screen, and
// back pops and re-activates the prior instance with its state intact.
// The stack is owned by the root model and injected into screens via
// SharedState; nothing reaches it as global state.
type NavigationStack struct {
	stack   []View
	pending View
	regress bool
}

func NewNavigationStack() *NavigationStack {
	return &NavigationStack{}
}

// Push appends a newly constructed screen. Called from screen
// constructors, before the transition to it resolves.
func (n *NavigationStack) Push(v View) {
	n.stack = append(n.stack, v)
}

// AdvanceTo records a forward transition to a screen that has already
// pushed itself.
func (n *NavigationStack) AdvanceTo(v View) {
	n.pending = v
	n.regress = false
}

// GoBack pops the current screen and sets the pending transition to
// the prior instance. The bottom screen can never be popped.
func (n *NavigationStack) GoBack() {
	if len(n.stack) < 2 {
		return
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.pending = n.stack[len(n.stack)-1]
	n.regress = true
}

// Resolve returns and clears the pending transition, at most one per
// input cycle. The second return is true for a regression: the
// returned screen is an existing instance being backed into, which is
// the only case that warrants an on-return refresh.
func (n *NavigationStack) Resolve() (View, bool) {
	v, regress := n.pending, n.regress
	n.pending = nil
	n.regress = false
	return v, regress
}

// Top returns the top of the stack, or nil when empty.
func (n *NavigationStack) Top() View {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Len returns the stack depth.
func (n *NavigationStack) Len() int {
	return len(n.stack)
}

// Screens returns the stack bottom to top, for breadcrumb rendering.
func (n *NavigationStack) Screens() []View {
	return n.stack
}
