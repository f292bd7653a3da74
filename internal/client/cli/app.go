// Package cli is the interactive terminal frontend: a REPL over the
// session store, the API clients, and the offer workflow.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/config"
	"github.com/mertsakar/wantmart/internal/client/models"
	"github.com/mertsakar/wantmart/internal/client/request"
	"github.com/mertsakar/wantmart/internal/client/session"
	"github.com/mertsakar/wantmart/internal/client/workflow"
	"github.com/mertsakar/wantmart/internal/logging"
)

// authAPI, productAPI and offerAPI are the client surfaces the REPL uses.
// They are satisfied by the concrete api clients and by fakes in tests.
type authAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	VerifyEmail(ctx context.Context, userID, code string) (*models.User, string, error)
	ResendVerification(ctx context.Context, userID string) (string, error)
}

type productAPI interface {
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
}

type offerAPI interface {
	ListOffersForOwner(ctx context.Context, ownerID string) ([]models.Offer, error)
}

type requestCreator interface {
	Create(ctx context.Context, f request.Form) (*models.Product, error)
}

type App struct {
	config   *config.Config
	session  *session.Store
	auth     authAPI
	products productAPI
	offers   offerAPI
	flow     *workflow.Workflow
	requests requestCreator
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
}

// NewApp wires the whole client: local database, credential holder, the
// three API clients, the restored session, and the workflows on top.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(os.Stderr, cfg.LogLevel)

	db, err := session.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	tokens := api.NewTokenHolder()
	store := session.NewStore(db, tokens)
	if err := store.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := api.NewAuthClient(cfg.AuthAPIURL)
	products := api.NewProductClient(cfg.ProductAPIURL, tokens)
	offers := api.NewOfferClient(cfg.OfferAPIURL, tokens)

	return &App{
		config:   cfg,
		session:  store,
		auth:     auth,
		products: products,
		offers:   offers,
		flow:     workflow.New(products, offers, store, log),
		requests: request.NewService(products, store),
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}
