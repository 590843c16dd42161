package accounts

import (
	"regexp"
	"strings"
)

// Account is a registered user as stored on the device.
type Account struct {
	// Password is the hex argon2id fingerprint of the password.
	Password string `json:"password"`
	Username string `json:"username"`
}

// Session is the signed-in user.
type Session struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	// ID is minted when the session opens and tags log lines.
	ID string `json:"id,omitempty"`
}

// State is the lifecycle state of a Directory.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// Snapshot is a read-only copy of the directory for display.
type Snapshot struct {
	State    State
	Session  *Session
	Err      error
	Accounts int
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether a normalized email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
