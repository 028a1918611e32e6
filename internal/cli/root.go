// Package cli is the terminal front end: the command tree, the session
// guard in front of the protected commands, and the rendering helpers.
// It owns no backend logic; everything goes through the shared SDK
// client and its interceptors.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/staffhive/benchctl/pkg/agencysdk"
	"github.com/staffhive/benchctl/pkg/session"
	"github.com/staffhive/benchctl/pkg/slogx"
)

// errSessionEnded signals a command that stopped because the session was
// torn down. The navigator has already told the user what to do, so the
// error itself renders silently; it only forces the non-zero exit.
var errSessionEnded = errors.New("session ended")

// errPrinted marks a failure whose message is already on screen.
var errPrinted = errors.New("command failed")

// App wires one SDK client, one session store and the output streams for
// a single invocation. Every command runs against the same App, so a 401
// seen by any of them tears down the one shared session.
type App struct {
	cfg    Config
	store  *session.Store
	client *agencysdk.Client
	nav    session.Navigator
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer

	asJSON bool
}

// loginHintNavigator is the terminal's stand-in for the login redirect:
// it cannot move the user anywhere, so it tells them where to go.
type loginHintNavigator struct {
	w io.Writer
}

func (n *loginHintNavigator) LoginRedirect() {
	fmt.Fprintln(n.w, "Your session has ended. Run 'benchctl login' to sign in.")
}

func newApp(cfg Config, out, errOut io.Writer) (*App, error) {
	logger := slogx.New(errOut, slogx.Config{
		App:    "benchctl",
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	var backend session.Backend
	if cfg.RedisAddr != "" {
		backend = session.NewRedisBackend(redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		}), cfg.Profile)
	} else {
		dir := cfg.EffectiveSessionDir()
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session dir: %w", err)
		}
		fb, err := session.NewFileBackend(dir)
		if err != nil {
			return nil, err
		}
		backend = fb
	}

	store := session.New(backend)
	nav := &loginHintNavigator{w: errOut}

	client := agencysdk.New(cfg.BaseURL, store, nav,
		agencysdk.WithClientID(InstallationID()),
		agencysdk.WithLogger(logger),
	)

	return &App{
		cfg:    cfg,
		store:  store,
		client: client,
		nav:    nav,
		logger: logger,
		out:    out,
		errOut: errOut,
	}, nil
}

// run executes a command body with a ready context. The error text keeps
// the backend's own message, mirroring the failure toasts the commands
// show. A session-expired failure stays quiet here because the 401 path
// has already spoken.
func (a *App) run(action string, fn func(ctx context.Context) error) error {
	ctx := slogx.WithContext(context.Background(), a.logger)
	if err := fn(ctx); err != nil {
		if agencysdk.IsSessionExpired(err) || errors.Is(err, errSessionEnded) {
			return errSessionEnded
		}
		fmt.Fprintf(a.errOut, "failed to %s: %v\n", action, err)
		return errPrinted
	}
	return nil
}

// runPublic is run without the session-expiry special case. Sign-in goes
// around the interceptors, so its 401 is an ordinary wrong-credentials
// failure and must surface like one.
func (a *App) runPublic(action string, fn func(ctx context.Context) error) error {
	ctx := slogx.WithContext(context.Background(), a.logger)
	if err := fn(ctx); err != nil {
		if errors.Is(err, errSessionEnded) {
			return err
		}
		fmt.Fprintf(a.errOut, "failed to %s: %v\n", action, err)
		return errPrinted
	}
	return nil
}

// guarded is run for commands behind the signed-in area. An unsigned
// user is pointed at login instead of the command running, the same
// bounce a protected route gives. IsAuthenticated has already torn down
// an expired session by the time it answers false.
func (a *App) guarded(action string, fn func(ctx context.Context) error) error {
	return a.run(action, func(ctx context.Context) error {
		if !a.store.IsAuthenticated(ctx) {
			a.nav.LoginRedirect()
			return errSessionEnded
		}
		return fn(ctx)
	})
}

// NewRootCommand builds the full command tree.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	app := &App{out: out, errOut: errOut}

	var baseURL, profile string
	var asJSON bool

	root := &cobra.Command{
		Use:   "benchctl",
		Short: "Terminal client for the consultancy placement backend",
		Long: "benchctl manages bench candidates, placements, employees, vendors and\n" +
			"candidate activities against the consultancy backend. Sign in once with\n" +
			"'benchctl login'; the session persists until it expires or you log out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if profile != "" {
				cfg.Profile = profile
			}

			built, err := newApp(cfg, out, errOut)
			if err != nil {
				return err
			}
			built.asJSON = asJSON
			*app = *built
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend API root (overrides config)")
	root.PersistentFlags().StringVar(&profile, "profile", "", "session profile to use")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON instead of tables")

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newDashboardCommand(app),
		newCandidatesCommand(app),
		newBenchCommand(app),
		newWorkingCommand(app),
		newEmployeesCommand(app),
		newVendorsCommand(app),
		newActivitiesCommand(app),
		newAnalyticsCommand(app),
	)

	return root
}

// Execute runs the CLI and reports the exit code. Setup errors are the
// only kind nothing has rendered yet; run and guarded print their own.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errSessionEnded) && !errors.Is(err, errPrinted) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}
