package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studyprep/internal/client/client"
	"github.com/dmitrijs2005/studyprep/internal/client/config"
	"github.com/dmitrijs2005/studyprep/internal/client/services"
	"github.com/dmitrijs2005/studyprep/internal/client/session"
	"github.com/dmitrijs2005/studyprep/internal/client/store"
	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/filex"
	"github.com/dmitrijs2005/studyprep/internal/logging"
)

type bootstrapper interface {
	Run(ctx context.Context) (session.Snapshot, error)
}

type App struct {
	config         *config.Config
	log            logging.Logger
	db             *sql.DB
	session        *session.Session
	bootstrapper   bootstrapper
	authService    services.AuthService
	profileService services.ProfileService
	reader         *bufio.Reader
	out            io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	st, err := store.NewSealedStore(db, c.StoreSecret, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess := session.New(log)

	transport := &client.AuthTransport{
		Token: func(ctx context.Context) (string, error) {
			return st.Get(ctx, common.TokenKey)
		},
		OnUnauthorized: func(ctx context.Context) {
			if err := st.Delete(ctx, common.TokenKey); err != nil {
				log.Error(ctx, "delete rejected token", "error", err)
			}
			sess.Clear()
		},
		Log: log,
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, transport, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:         c,
		log:            log,
		db:             db,
		session:        sess,
		bootstrapper:   session.NewBootstrapper(st, api, sess, c.RequestTimeout, log),
		authService:    services.NewAuthService(api, st, sess, log),
		profileService: services.NewProfileService(api, sess, log),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

// Run restores the session and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	fmt.Fprintln(a.out, "Welcome to StudyPrep (type 'help' for commands)")
	_ = a.Retry(ctx)

	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) route() session.Route {
	return a.session.Snapshot().Route
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.User != nil {
		return fmt.Sprintf("%s %s", snap.User.Email, snap.State)
	}
	return snap.State.String()
}

// Retry runs the session bootstrap, printing a loading line while the
// profile is being fetched.
func (a *App) Retry(ctx context.Context) error {
	updates, cancel := a.session.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			if snap.State == session.AuthenticatedPendingProfile {
				fmt.Fprintln(a.out, "Loading your profile...")
			}
		}
	}()

	snap, err := a.bootstrapper.Run(ctx)
	cancel()
	<-done

	if err != nil {
		a.report(err)
		fmt.Fprintln(a.out, "Type 'retry' to try again.")
		return err
	}

	a.announce(snap)
	return nil
}

func (a *App) announce(snap session.Snapshot) {
	switch snap.Route {
	case session.RouteLogin:
		fmt.Fprintln(a.out, "Please log in or sign up.")
	case session.RouteCompleteProfile:
		fmt.Fprintf(a.out, "Hi %s, please complete your profile ('complete-profile').\n", snap.User.FullName())
	case session.RouteMain:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", snap.User.FullName())
	}
}
