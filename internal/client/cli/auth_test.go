package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityzen/tripbuddy/internal/client/accounts"
	"github.com/cityzen/tripbuddy/internal/client/places"
	"github.com/cityzen/tripbuddy/internal/logging"
)

// stubInputs answers text prompts in order and returns password for every
// password prompt. It reports the prompts it saw.
func stubInputs(t *testing.T, password string, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	return &prompts
}

type fakeDirectory struct {
	loading bool
	session *accounts.Session
	err     error

	cleared    int
	signUpArgs []string
	signInArgs []string
	signedOut  bool
}

func (f *fakeDirectory) SignUp(_ context.Context, email, password, username string) (accounts.Session, error) {
	f.signUpArgs = []string{email, password, username}
	if f.err != nil {
		return accounts.Session{}, f.err
	}
	f.session = &accounts.Session{Email: email, Username: username}
	return *f.session, nil
}

func (f *fakeDirectory) SignIn(_ context.Context, email, password string) (accounts.Session, error) {
	f.signInArgs = []string{email, password}
	if f.err != nil {
		return accounts.Session{}, f.err
	}
	f.session = &accounts.Session{Email: email, Username: "Alice"}
	return *f.session, nil
}

func (f *fakeDirectory) SignOut(context.Context) error {
	f.signedOut = true
	f.session = nil
	return f.err
}

func (f *fakeDirectory) ClearError()   { f.cleared++ }
func (f *fakeDirectory) Loading() bool { return f.loading }
func (f *fakeDirectory) Session() (accounts.Session, bool) {
	if f.session == nil {
		return accounts.Session{}, false
	}
	return *f.session, true
}

func (f *fakeDirectory) Snapshot() accounts.Snapshot {
	snap := accounts.Snapshot{State: accounts.StateReady, Session: f.session, Err: f.err}
	if f.loading {
		snap.State = accounts.StateLoading
	}
	return snap
}

func newFakeApp(dir *fakeDirectory) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		log:       logging.Discard(),
		auth:      dir,
		out:       &out,
		locations: &places.List{},
	}, &out
}

func TestSignUp_Success(t *testing.T) {
	dir := &fakeDirectory{}
	a, out := newFakeApp(dir)
	prompts := stubInputs(t, "secret", "alice@example.org", "Alice")

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, []string{"Email", "Username"}, *prompts)
	assert.Equal(t, []string{"alice@example.org", "secret", "Alice"}, dir.signUpArgs)
	assert.Equal(t, 1, dir.cleared)
	assert.False(t, a.submitting)
	assert.Contains(t, out.String(), "Welcome, Alice!")
}

func TestSignIn_ErrorPropagates(t *testing.T) {
	dir := &fakeDirectory{err: accounts.ErrWrongPassword}
	a, _ := newFakeApp(dir)
	stubInputs(t, "nope", "alice@example.org")

	err := a.SignIn(context.Background())
	require.ErrorIs(t, err, accounts.ErrWrongPassword)
	assert.Equal(t, []string{"alice@example.org", "nope"}, dir.signInArgs)
	assert.False(t, a.submitting, "guard is released after a failure")
}

func TestAuth_RefusedWhileLoading(t *testing.T) {
	dir := &fakeDirectory{loading: true}
	a, _ := newFakeApp(dir)
	prompts := stubInputs(t, "pw", "a@b.com")

	require.ErrorIs(t, a.SignIn(context.Background()), accounts.ErrNotReady)
	require.ErrorIs(t, a.SignUp(context.Background()), accounts.ErrNotReady)
	assert.Empty(t, *prompts, "no prompts before the directory is ready")
	assert.Zero(t, dir.cleared)
}

func TestAuth_RefusedWhileSubmitting(t *testing.T) {
	dir := &fakeDirectory{}
	a, _ := newFakeApp(dir)
	a.submitting = true
	stubInputs(t, "pw", "a@b.com")

	require.ErrorIs(t, a.SignIn(context.Background()), errBusy)
	assert.Nil(t, dir.signInArgs)
	assert.True(t, a.submitting)
}

func TestSignIn_InputError(t *testing.T) {
	dir := &fakeDirectory{}
	a, _ := newFakeApp(dir)
	stubInputs(t, "pw")

	require.ErrorIs(t, a.SignIn(context.Background()), io.EOF)
	assert.Nil(t, dir.signInArgs)
}

func TestSignOut_DropsTrip(t *testing.T) {
	dir := &fakeDirectory{session: &accounts.Session{Email: "a@b.com", Username: "Alice"}}
	a, out := newFakeApp(dir)
	a.locations.Add("Rome, Italy")
	a.picked = &places.Coordinates{Latitude: 1}

	require.NoError(t, a.SignOut(context.Background()))

	assert.True(t, dir.signedOut)
	assert.Zero(t, a.locations.Len())
	assert.Nil(t, a.picked)
	assert.Nil(t, a.query)
	assert.Contains(t, out.String(), "Signed out")
}

func TestSignOut_Error(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("boom")}
	a, _ := newFakeApp(dir)
	require.Error(t, a.SignOut(context.Background()))
}

func TestWhoAmI_AndStatus(t *testing.T) {
	dir := &fakeDirectory{}
	a, out := newFakeApp(dir)

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not signed in")
	assert.Equal(t, "", a.status())

	dir.session = &accounts.Session{Email: "a@b.com", Username: "Alice"}
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Alice <a@b.com>")
	assert.Equal(t, "(Alice)", a.status())

	dir.loading = true
	assert.Equal(t, "(loading)", a.status())
}
