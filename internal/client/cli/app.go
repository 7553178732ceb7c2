package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/cofund/internal/client/cache"
	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/config"
	"github.com/dmitrijs2005/cofund/internal/client/services"
	"github.com/dmitrijs2005/cofund/internal/filex"
	"github.com/fatih/color"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	fundingService services.FundingService
	contentService services.ContentService
	db             *sql.DB
	cache          cache.FingerprintCache
	userName       string
	mu             sync.Mutex
	Mode           Mode
	reader         *bufio.Reader
	out            io.Writer
}

// NewApp opens the local database and fingerprint cache under the data
// directory and connects the API client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "client.db"))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	fc, err := cache.Open(c.CacheBackend, db, dir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewCofundClient(c.ServerEndpointAddr)
	if err != nil {
		_ = fc.Close()
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:         c,
		authService:    services.NewAuthService(apiClient, db),
		fundingService: services.NewFundingService(apiClient, fc),
		contentService: services.NewContentService(apiClient),
		db:             db,
		cache:          fc,
		reader:         bufio.NewReader(os.Stdin),
		out:            color.Output,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run prompts for credentials, starts the connectivity watcher and blocks
// in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		_ = a.authService.Close(ctx)
		if a.cache != nil {
			_ = a.cache.Close()
		}
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	color.Cyan("Welcome to cofund CLI (type 'help' for commands)")
	if err := a.Login(ctx); err != nil {
		a.fail(err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				if a.mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else if a.mode() != ModeOnline {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) ok(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(a.out, format+"\n", args...)
}

func (a *App) warn(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(a.out, format+"\n", args...)
}

func (a *App) fail(err error) {
	color.New(color.FgRed).Fprintf(a.out, "error: %v\n", err)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
