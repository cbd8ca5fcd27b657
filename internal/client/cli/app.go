package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/authctx"
	"github.com/smartuniversity/campusctl/internal/client/cart"
	"github.com/smartuniversity/campusctl/internal/client/config"
	"github.com/smartuniversity/campusctl/internal/client/localdb"
	"github.com/smartuniversity/campusctl/internal/client/services"
	"github.com/smartuniversity/campusctl/internal/client/session"
	"github.com/smartuniversity/campusctl/internal/logging"
)

// Mode is the connectivity indicator shown in the prompt. It reflects the
// last gateway probe, not the outcome of individual requests.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     *api.Client
	session *session.Store
	cart    *cart.Cart

	auth      services.AuthService
	market    services.MarketService
	booking   services.BookingService
	exam      services.ExamService
	dashboard services.DashboardService
	health    services.HealthService

	reader *bufio.Reader
	out    io.Writer

	modeMu sync.Mutex
	mode   Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := localdb.Init(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	auth := authctx.New()
	apiClient := api.New(c.BaseURL, c.RequestTimeout, auth)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		api:       apiClient,
		session:   session.NewStore(db, auth, log),
		cart:      cart.New(),
		auth:      services.NewAuthService(apiClient),
		market:    services.NewMarketService(apiClient),
		booking:   services.NewBookingService(apiClient),
		exam:      services.NewExamService(apiClient),
		dashboard: services.NewDashboardService(apiClient),
		health:    services.NewHealthService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err.Error())
	}
	if cur := a.session.Current(); cur.LoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", cur.UserID)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.startGatewayWatcher(watchCtx, a.config.HealthCheckInterval)

	printlnFn("Welcome to campusctl (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().LoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if cur := a.session.Current(); cur.LoggedIn() {
		s = cur.UserID
		if cur.Tenant != "" {
			s += "@" + cur.Tenant
		}
	}
	if m := a.getMode(); m != ModeUnknown {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(ctx, "gateway connectivity changed", "mode", string(mode))
	}
}

// startGatewayWatcher periodically probes the gateway health endpoint and
// keeps the prompt's connectivity indicator current.
func (a *App) startGatewayWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(probeCtx, "/actuator/health")
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
