// Package session models a user's authentication session as a small
// state machine: anonymous until a successful login, anonymous again
// after a successful logout.
//
// Credentials are compared by exact equality, and a credential mismatch
// is never distinguished from malformed input: both produce the same
// generic message, so a caller cannot learn which field was wrong.
// Outcomes surface as user-facing status strings, not errors.
package session

import "github.com/plateplanner/backend/pkg/metrics"

// Status messages returned by Login and Logout.
const (
	MsgWelcomeBack     = "Welcome Back"
	MsgIncorrect       = "Incorrect Username or Password"
	MsgLogoutOK        = "Logout successful"
	MsgNoLogoutAction  = "No logout action, user remains logged in"
	MsgInvalidLogin    = "Invalid session please login"
	MsgInvalidSession  = "Invalid session"
	MsgLogoutFailed    = "Logout failed please try again"
	MsgUnexpectedError = "Unexpected error"
)

// User owns one identity and its session state. A User starts
// anonymous; only Login and Logout move the state.
type User struct {
	username string
	password string
	loggedIn bool
}

// NewUser creates an anonymous user with the given stored credentials.
func NewUser(username, password string) *User {
	return &User{username: username, password: password}
}

// LoggedIn reports whether the session is authenticated.
func (u *User) LoggedIn() bool {
	return u.loggedIn
}

// Login attempts to authenticate. Non-string arguments, passwords
// longer than 8 characters, and credential mismatches are all rejected
// with the same generic message and leave the state untouched.
func (u *User) Login(username, password any) string {
	name, nameOK := username.(string)
	pass, passOK := password.(string)
	if !nameOK || !passOK {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return MsgIncorrect
	}

	if len(pass) > 8 {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return MsgIncorrect
	}

	if name == u.username && pass == u.password {
		u.loggedIn = true
		metrics.LoginAttempts.WithLabelValues("accepted").Inc()
		return MsgWelcomeBack
	}

	metrics.LoginAttempts.WithLabelValues("rejected").Inc()
	return MsgIncorrect
}

// Logout attempts to end the session. Both arguments must be booleans:
// a non-boolean sessionActive is an unexpected fault, a non-boolean
// logoutRequest a retryable failure, and neither changes state. Only
// (true, true) transitions back to anonymous.
func (u *User) Logout(sessionActive, logoutRequest any) string {
	active, ok := sessionActive.(bool)
	if !ok {
		return MsgUnexpectedError
	}

	request, ok := logoutRequest.(bool)
	if !ok {
		return MsgLogoutFailed
	}

	switch {
	case active && request:
		u.loggedIn = false
		return MsgLogoutOK
	case active && !request:
		return MsgNoLogoutAction
	case !active && request:
		return MsgInvalidLogin
	default:
		return MsgInvalidSession
	}
}
