package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cityzen/tripbuddy/internal/client/accounts"
	"github.com/cityzen/tripbuddy/internal/client/config"
	"github.com/cityzen/tripbuddy/internal/client/database"
	"github.com/cityzen/tripbuddy/internal/client/models"
	"github.com/cityzen/tripbuddy/internal/client/places"
	"github.com/cityzen/tripbuddy/internal/client/repositories/metadata"
	"github.com/cityzen/tripbuddy/internal/client/trip"
	"github.com/cityzen/tripbuddy/internal/logging"
)

var (
	errSignedOut = errors.New("sign in first")
	errBusy      = errors.New("still submitting, please wait")
	errNoTrip    = errors.New("no trip yet, run 'trip' first")
)

// directory is the part of *accounts.Directory the CLI uses.
type directory interface {
	SignUp(ctx context.Context, email, password, username string) (accounts.Session, error)
	SignIn(ctx context.Context, email, password string) (accounts.Session, error)
	SignOut(ctx context.Context) error
	ClearError()
	Loading() bool
	Session() (accounts.Session, bool)
	Snapshot() accounts.Snapshot
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     directory
	geocoder places.Geocoder
	reader   *bufio.Reader
	out      io.Writer

	// submitting is set while a sign-up or sign-in is in flight.
	submitting bool

	query     *trip.Query
	locations *places.List
	picked    *places.Coordinates
	tickets   []models.Ticket
}

// NewApp opens the database at c.DatabasePath and loads the account
// directory from it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := database.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	dir := accounts.Open(ctx, metadata.NewStore(db), log)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		auth:      dir,
		geocoder:  places.NewGazetteer(),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		locations: &places.List{},
		tickets:   models.SampleTickets(),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to TripBuddy (type 'help' for commands)")
	if s, ok := a.auth.Session(); ok {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", s.Username, s.Email)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the database.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
	a.db = nil
}

func (a *App) isSignedIn() bool {
	_, ok := a.auth.Session()
	return ok
}

func (a *App) status() string {
	snap := a.auth.Snapshot()
	switch {
	case snap.State == accounts.StateLoading:
		return "(loading)"
	case snap.Session != nil:
		return fmt.Sprintf("(%s)", snap.Session.Username)
	}
	return ""
}

func (a *App) requireSession() error {
	if !a.isSignedIn() {
		return errSignedOut
	}
	return nil
}
