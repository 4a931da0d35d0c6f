package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dmitrijs2005/krishi/internal/buildinfo"
	"github.com/dmitrijs2005/krishi/internal/client/config"
	"github.com/dmitrijs2005/krishi/internal/client/i18n"
	"github.com/dmitrijs2005/krishi/internal/client/models"
	"github.com/dmitrijs2005/krishi/internal/client/repositories/repomanager"
	"github.com/dmitrijs2005/krishi/internal/client/services"
	"github.com/dmitrijs2005/krishi/internal/client/storage"
	"github.com/dmitrijs2005/krishi/internal/cryptox"
	"github.com/dmitrijs2005/krishi/internal/logging"
	"github.com/dmitrijs2005/krishi/internal/timex"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	lang     *i18n.Resolver
	monitor  *services.SecurityMonitor
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	rand     *rand.Rand
	user     *models.User
	commands map[string]command
	closeFn  func() error
}

// NewApp opens the store named in c and wires the services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.StoreDriver, c.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog, err := i18n.LoadCatalog()
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	repos := repomanager.New()
	clock := timex.SystemClock{}

	auth := services.NewAuthService(store, repos, cryptox.NewArgon2(), cryptox.NewTokenIssuer([]byte(c.TokenSecret)),
		clock, logger.With("component", "auth"), services.AuthConfig{
			SessionTTL: c.SessionTTL,
			ClientIP:   c.ClientIP,
			UserAgent:  buildinfo.UserAgent(),
		})
	auth = services.WithLatency(auth, services.LatencyConfig{Login: c.LoginDelay, Signup: c.SignupDelay})

	lang := i18n.NewResolver(catalog, repos.Preferences(store.KV()), logger.With("component", "i18n"), i18n.Options{
		Ambient: c.AmbientLanguage,
		Dynamic: c.DynamicTranslation,
	})
	monitor := services.NewSecurityMonitor(repos.SecurityLog(store.KV()), clock, logger)

	a := newApp(c, auth, lang, monitor, logger, os.Stdin, os.Stdout)
	a.closeFn = store.Close
	return a, nil
}

func newApp(c *config.Config, auth services.AuthService, lang *i18n.Resolver, monitor *services.SecurityMonitor,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		auth:    auth,
		lang:    lang,
		monitor: monitor,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	a.commands = commandTable()
	return a
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Close releases the store. It is safe on an App built without one.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

// Run resolves the display language, restores a still valid session, starts
// the security monitor and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.lang.ResolveInitial(ctx)
	a.lang.Bind("app_title")
	a.lang.Bind("app_tagline")
	a.lang.OnChange(func(ctx context.Context, code string) {
		a.logger.Debug(ctx, "CLI: language listener", "locale", code)
	})

	v := a.lang.View()
	a.println(v.Title, "-", v.Description)

	user, ok, err := a.auth.HasValidSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "CLI: session check failed", "error", err)
	}
	if ok && user != nil {
		a.user = user
		a.println(a.lang.TranslateParams("welcome_back", map[string]string{"name": user.Name}))
	}

	go a.monitor.Run(ctx, a.config.SecurityCheckInterval)

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) status() string {
	if a.user == nil {
		return a.lang.Current()
	}
	return a.user.Name + ", " + a.lang.Current()
}
