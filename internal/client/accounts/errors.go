package accounts

import "errors"

var (
	ErrNotReady    = errors.New("accounts are still loading")
	ErrUnavailable = errors.New("sign-up is unavailable right now, try again later")

	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrEmailTaken      = errors.New("email already registered, try signing in")
	ErrMissingUsername = errors.New("please enter a username")
	ErrPasswordReused  = errors.New("that password is already used, choose a different one")
	ErrAccountNotFound = errors.New("account not found, please sign up")
	ErrWrongPassword   = errors.New("incorrect password, please try again")
)
