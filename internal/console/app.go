// Package console implements the interactive admin console: a REPL whose
// commands map to the store's admin views (dashboard, products, categories,
// orders, users), talking to the REST API through the services layer.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmperov/shopadmin/internal/api"
	"github.com/dmperov/shopadmin/internal/config"
	"github.com/dmperov/shopadmin/internal/logging"
	"github.com/dmperov/shopadmin/internal/services"
	"github.com/dmperov/shopadmin/internal/session"
)

// App wires the console's views to the services layer and session store.
type App struct {
	config     *config.Config
	log        logging.Logger
	store      *session.Store
	client     *api.Client
	auth       services.AuthService
	products   services.ProductService
	categories services.CategoryService
	orders     services.OrderService
	users      services.UserService
	dashboard  services.DashboardService
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp builds the console against the configured API endpoint. The session
// store doubles as the client's token source, so a login in one command is
// visible to every later request.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewStore(cfg.SessionFile)
	client := api.NewClient(cfg.BaseURL, store, cfg.RequestTimeout, log)

	return &App{
		config:     cfg,
		log:        log,
		store:      store,
		client:     client,
		auth:       services.NewAuthService(client),
		products:   services.NewProductService(client),
		categories: services.NewCategoryService(client),
		orders:     services.NewOrderService(client),
		users:      services.NewUserService(client),
		dashboard:  services.NewDashboardService(client),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

// Run loads any persisted session and starts the REPL.
func (a *App) Run(ctx context.Context) {
	if _, err := a.store.Load(); err != nil && !errors.Is(err, session.ErrNoSession) {
		a.log.Warn(ctx, "could not load saved session", "error", err)
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status renders the prompt segment: the signed-in admin's email, or
// "signed out".
func (a *App) status() string {
	sess := a.store.Current()
	if sess == nil || sess.Token == "" {
		return "signed out"
	}
	if session.TokenExpired(sess.Token) {
		return "session expired"
	}
	return sess.User.Email
}

// requireAdmin gates every view behind the admin role. It reports false and
// tells the user to log in when the session is missing, expired, or not an
// admin.
func (a *App) requireAdmin() bool {
	sess := a.store.Current()
	if sess != nil && sess.Token != "" && session.TokenExpired(sess.Token) {
		printlnFn("Session expired, please log in again.")
		return false
	}
	if err := session.RequireAdmin(sess); err != nil {
		if errors.Is(err, session.ErrNotAdmin) {
			printlnFn("Admin access required.")
		} else {
			printlnFn("Please log in first.")
		}
		return false
	}
	return true
}

func (a *App) isLoggedIn() bool {
	sess := a.store.Current()
	return sess != nil && sess.Token != ""
}
