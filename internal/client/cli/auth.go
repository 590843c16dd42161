package cli

import (
	"context"
	"fmt"

	"github.com/cityzen/tripbuddy/internal/client/accounts"
	"github.com/cityzen/tripbuddy/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// beginSubmit refuses auth commands while the directory is loading or a
// previous submission is still running, and clears the last auth error.
func (a *App) beginSubmit() (func(), error) {
	if a.auth.Loading() {
		return nil, accounts.ErrNotReady
	}
	if a.submitting {
		return nil, errBusy
	}
	a.auth.ClearError()
	a.submitting = true
	return func() { a.submitting = false }, nil
}

// SignUp prompts for email, username and password and registers a new
// account. The new account is signed in right away.
func (a *App) SignUp(ctx context.Context) error {
	done, err := a.beginSubmit()
	if err != nil {
		return err
	}
	defer done()

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.SignUp(ctx, email, string(password), username)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.Username)
	return nil
}

// SignIn prompts for credentials and opens a session.
func (a *App) SignIn(ctx context.Context) error {
	done, err := a.beginSubmit()
	if err != nil {
		return err
	}
	defer done()

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", s.Username)
	return nil
}

// SignOut ends the session. The trip being edited is dropped with it.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.resetTrip()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(_ context.Context) error {
	s, ok := a.auth.Session()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", s.Username, s.Email)
	return nil
}
