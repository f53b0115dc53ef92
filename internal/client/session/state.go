package session

import "github.com/dmitrijs2005/wepub/internal/client/models"

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the session. Profile is nil until it
// has been fetched.
type Snapshot struct {
	State   State
	Token   string
	Profile *models.User
}

// Username returns the profile's username or "" when no profile is loaded.
func (s Snapshot) Username() string {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Username
}
