package session

// State is the route-guard view of the session.
type State int

const (
	// StateLoading means the startup credential check has not resolved;
	// protected content stays blocked.
	StateLoading State = iota
	// StateUnauthenticated means no user is logged in; protected access
	// routes to the login entry point.
	StateUnauthenticated
	// StateAuthenticated means protected content may be shown.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Guard decides whether protected content may be rendered. It holds no
// state of its own; every decision derives from the Store's fields.
type Guard struct {
	store *Store
}

func NewGuard(store *Store) Guard {
	return Guard{store: store}
}

// State derives the current guard state.
func (g Guard) State() State {
	if g.store.Loading() {
		return StateLoading
	}
	if g.store.User() == nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Allow reports whether protected content may be shown right now.
func (g Guard) Allow() bool {
	return g.State() == StateAuthenticated
}
