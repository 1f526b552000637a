package client

// AuthState is the derived authentication state of a realm. It is never
// stored: it is recomputed from the persisted session on every guarded
// action.
type AuthState int

const (
	Anonymous AuthState = iota
	AuthenticatedPendingRotation
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthenticatedPendingRotation:
		return "authenticated (password change pending)"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Redirect is the gate's decision for a guarded action.
type Redirect int

const (
	// Proceed means the action may run.
	Proceed Redirect = iota
	// RedirectLogin means no valid credential is present.
	RedirectLogin
	// RedirectChangePassword means the mandatory rotation is still due.
	RedirectChangePassword
)

// State derives the realm's authentication state from storage.
func (s *SessionStore) State() AuthState {
	session := s.Load()
	switch {
	case session.Token == "":
		return Anonymous
	case session.RequiresPasswordChange:
		return AuthenticatedPendingRotation
	default:
		return Authenticated
	}
}

// Require gates an action that needs full authentication: dashboards,
// CRUD, chat. A pending rotation always bounces to the change-password
// step, never through to the destination.
func Require(state AuthState) Redirect {
	switch state {
	case Authenticated:
		return Proceed
	case AuthenticatedPendingRotation:
		return RedirectChangePassword
	default:
		return RedirectLogin
	}
}

// RequireForPasswordChange gates the change-password step itself. It
// needs a credential but is exactly the place a pending rotation must
// be able to reach; it also stays available to a fully authenticated
// admin doing a voluntary rotation.
func RequireForPasswordChange(state AuthState) Redirect {
	if state == Anonymous {
		return RedirectLogin
	}
	return Proceed
}
