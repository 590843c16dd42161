package accounts

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cityzen/tripbuddy/internal/client/repositories/metadata"
	"github.com/cityzen/tripbuddy/internal/logging"
)

const (
	AccountsKey = "auth.accounts.v1"
	SessionKey  = "auth.currentUser.v1"
	PepperKey   = "auth.pepper.v1"
)

// Storage is the durable key/value store the directory persists into.
// MultiGet leaves absent keys out of the result.
type Storage interface {
	MultiGet(ctx context.Context, keys []string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// txStorage is implemented by stores that can write the whole snapshot
// atomically (metadata.Store).
type txStorage interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx metadata.Repository) error) error
}

type writer interface {
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Directory owns the accounts, the used-password index and the current
// session. Operations are serialized; each one runs to completion,
// persistence included, before the next starts.
type Directory struct {
	mu      sync.Mutex
	storage Storage
	log     logging.Logger
	newID   func() string

	state    State
	accounts map[string]Account
	used     map[string]struct{}
	session  *Session
	pepper   []byte
	lastErr  error
}

// Option customizes a Directory.
type Option func(*Directory)

// WithSessionIDs replaces the session ID generator.
func WithSessionIDs(fn func() string) Option {
	return func(d *Directory) { d.newID = fn }
}

// NewDirectory returns a directory in StateLoading. Call Load before use.
func NewDirectory(storage Storage, log logging.Logger, opts ...Option) *Directory {
	d := &Directory{
		storage:  storage,
		log:      log,
		newID:    uuid.NewString,
		state:    StateLoading,
		accounts: make(map[string]Account),
		used:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open creates a directory and loads it.
func Open(ctx context.Context, storage Storage, log logging.Logger, opts ...Option) *Directory {
	d := NewDirectory(storage, log, opts...)
	d.Load(ctx)
	return d
}

// Load hydrates the directory from storage and moves it to StateReady.
// Storage or decoding failures leave an empty directory with no session.
// Loading an already ready directory does nothing.
func (d *Directory) Load(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateReady {
		return
	}
	defer func() { d.state = StateReady }()

	if err := d.hydrate(ctx); err != nil {
		d.log.Warn(ctx, "discarding persisted accounts", "error", err)
		d.accounts = make(map[string]Account)
		d.used = make(map[string]struct{})
		d.session = nil
		d.pepper = nil
	}

	if d.pepper == nil {
		p, err := newPepper()
		if err != nil {
			d.log.Error(ctx, "password pepper unavailable, sign-up disabled", "error", err)
		}
		d.pepper = p
	}

	d.log.Info(ctx, "accounts loaded", "accounts", len(d.accounts), "signed_in", d.session != nil)
}

func (d *Directory) hydrate(ctx context.Context) error {
	values, err := d.storage.MultiGet(ctx, []string{AccountsKey, SessionKey, PepperKey})
	if err != nil {
		return err
	}

	if raw, ok := values[PepperKey]; ok {
		if len(raw) != pepperSize {
			return errCorrupt("pepper has wrong size")
		}
		d.pepper = raw
	}

	if raw, ok := values[AccountsKey]; ok {
		var accounts map[string]Account
		if err := json.Unmarshal(raw, &accounts); err != nil {
			return err
		}
		if len(accounts) > 0 && d.pepper == nil {
			return errCorrupt("accounts stored without pepper")
		}
		for email, a := range accounts {
			d.accounts[email] = a
			d.used[a.Password] = struct{}{}
		}
	}

	if raw, ok := values[SessionKey]; ok {
		var s Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if s.Email == "" {
			return errCorrupt("session without email")
		}
		d.session = &s
	}

	return nil
}

// SignUp registers a new account and signs it in. Checks run in order:
// email shape, email uniqueness, username, password reuse across all
// accounts.
func (d *Directory) SignUp(ctx context.Context, email, password, username string) (Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastErr = nil
	if d.state != StateReady {
		return Session{}, d.fail(ErrNotReady)
	}
	if d.pepper == nil {
		return Session{}, d.fail(ErrUnavailable)
	}

	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)

	if !ValidEmail(email) {
		return Session{}, d.fail(ErrInvalidEmail)
	}
	if _, ok := d.accounts[email]; ok {
		return Session{}, d.fail(ErrEmailTaken)
	}
	if username == "" {
		return Session{}, d.fail(ErrMissingUsername)
	}

	fp := fingerprint(password, d.pepper)
	if _, ok := d.used[fp]; ok {
		return Session{}, d.fail(ErrPasswordReused)
	}

	d.accounts[email] = Account{Password: fp, Username: username}
	d.used[fp] = struct{}{}
	s := d.open(email, username)
	d.persist(ctx)

	d.log.Info(ctx, "account registered", "email", email, "session", s.ID)
	return s, nil
}

// SignIn authenticates an existing account and opens a session for it.
func (d *Directory) SignIn(ctx context.Context, email, password string) (Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastErr = nil
	if d.state != StateReady {
		return Session{}, d.fail(ErrNotReady)
	}

	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return Session{}, d.fail(ErrInvalidEmail)
	}

	account, ok := d.accounts[email]
	if !ok {
		return Session{}, d.fail(ErrAccountNotFound)
	}
	if !sameFingerprint(account.Password, fingerprint(password, d.pepper)) {
		return Session{}, d.fail(ErrWrongPassword)
	}

	s := d.open(email, account.Username)
	d.persist(ctx)

	d.log.Info(ctx, "signed in", "email", email, "session", s.ID)
	return s, nil
}

// SignOut ends the current session and removes the persisted session
// record. Accounts are untouched.
func (d *Directory) SignOut(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateReady {
		return ErrNotReady
	}

	if d.session != nil {
		d.log.Info(ctx, "signed out", "email", d.session.Email, "session", d.session.ID)
	}
	d.session = nil

	if err := d.storage.Delete(ctx, SessionKey); err != nil {
		d.log.Warn(ctx, "failed to remove persisted session", "error", err)
	}
	return nil
}

// ClearError forgets the last error returned by SignUp or SignIn.
func (d *Directory) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = nil
}

// Loading reports whether Load has not completed yet.
func (d *Directory) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StateLoading
}

// Session returns the signed-in user, if any.
func (d *Directory) Session() (Session, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return Session{}, false
	}
	return *d.session, true
}

// Snapshot is a consistent view of the directory state. Err is the error of
// the most recent SignUp or SignIn, if it failed and has not been cleared.
func (d *Directory) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{State: d.state, Err: d.lastErr, Accounts: len(d.accounts)}
	if d.session != nil {
		s := *d.session
		snap.Session = &s
	}
	return snap
}

func (d *Directory) fail(err error) error {
	d.lastErr = err
	return err
}

func (d *Directory) open(email, username string) Session {
	d.session = &Session{Email: email, Username: username, ID: d.newID()}
	return *d.session
}

// persist writes the full snapshot. Failures are logged and otherwise
// ignored; the in-memory state stays authoritative until the next save.
func (d *Directory) persist(ctx context.Context) {
	if err := d.save(ctx); err != nil {
		d.log.Warn(ctx, "failed to persist accounts", "error", err)
	}
}

func (d *Directory) save(ctx context.Context) error {
	accounts, err := json.Marshal(d.accounts)
	if err != nil {
		return err
	}
	var session []byte
	if d.session != nil {
		if session, err = json.Marshal(d.session); err != nil {
			return err
		}
	}

	write := func(ctx context.Context, w writer) error {
		if err := w.Set(ctx, PepperKey, d.pepper); err != nil {
			return err
		}
		if err := w.Set(ctx, AccountsKey, accounts); err != nil {
			return err
		}
		if session == nil {
			return w.Delete(ctx, SessionKey)
		}
		return w.Set(ctx, SessionKey, session)
	}

	if ts, ok := d.storage.(txStorage); ok {
		return ts.InTx(ctx, func(ctx context.Context, tx metadata.Repository) error {
			return write(ctx, tx)
		})
	}
	return write(ctx, d.storage)
}

type errCorrupt string

func (e errCorrupt) Error() string { return "corrupt persisted state: " + string(e) }
