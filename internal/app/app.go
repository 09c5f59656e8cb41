package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantacalcio/internal/config"
	"github.com/riskibarqy/fantacalcio/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/fantacalcio/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/fantacalcio/internal/platform/id"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/riskibarqy/fantacalcio/internal/usecase"
)

// Services is every use case the transports need.
type Services struct {
	Players    *usecase.PlayerService
	Teams      *usecase.TeamService
	Auction    *usecase.AuctionService
	Wishlist   *usecase.WishlistService
	Quotations *usecase.QuotationService
	Import     *usecase.ImportService
	Statistics *usecase.StatisticsService
	Backup     *usecase.BackupService
}

// OpenDatabase opens the SQLite file from cfg and applies pending migrations
// when DB_AUTO_MIGRATE is set.
func OpenDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	path := normalizeDBPath(cfg.DBPath)
	db, err := sqlite.Open(ctx, sqlite.Options{
		Path:           path,
		MaxOpenConns:   cfg.DBMaxOpenConns,
		BusyTimeout:    cfg.DBBusyTimeout,
		DBName:         dbNameFromPath(path),
		QueryFormatter: formatDBQueryForTrace,
	})
	if err != nil {
		return nil, err
	}

	if !cfg.DBAutoMigrate {
		logger.Info("database opened", "path", path, "auto_migrate", false)
		return db, nil
	}

	version, err := sqlite.Migrate(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("database ready", "path", path, "schema_version", version)

	return db, nil
}

// NewServices wires the SQLite repositories into the use cases.
func NewServices(db *sqlx.DB, cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo := sqlite.NewPlayerRepository(db)
	quotationRepo := sqlite.NewQuotationRepository(db)
	wishlistRepo := sqlite.NewWishlistRepository(db)

	ids := idgen.NewUUIDGenerator()

	return &Services{
		Players:    usecase.NewPlayerService(playerRepo, logger),
		Teams:      usecase.NewTeamService(sqlite.NewTeamRepository(db), playerRepo, cfg.DefaultTeamBudget, logger),
		Auction:    usecase.NewAuctionService(sqlite.NewAuctionRepository(db), playerRepo, logger),
		Wishlist:   usecase.NewWishlistService(wishlistRepo, playerRepo, logger),
		Quotations: usecase.NewQuotationService(quotationRepo, playerRepo, logger),
		Import:     usecase.NewImportService(playerRepo, quotationRepo, wishlistRepo, ids, logger),
		Statistics: usecase.NewStatisticsService(sqlite.NewStatisticsRepository(db), cfg.StatsTopN, logger),
		Backup:     usecase.NewBackupService(sqlite.NewBackupRepository(db), ids, logger),
	}
}

// NewHTTPServer builds the API server on top of an open database.
func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svc := NewServices(db, cfg, logger)
	handler := httpapi.NewHandler(
		svc.Players,
		svc.Teams,
		svc.Auction,
		svc.Wishlist,
		svc.Quotations,
		svc.Import,
		svc.Statistics,
		svc.Backup,
		db,
		cfg.UploadMaxBytes,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}

// App owns the database and the HTTP server for one process.
type App struct {
	cfg    config.Config
	db     *sqlx.DB
	server *http.Server
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	server, err := NewHTTPServer(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{cfg: cfg, db: db, server: server, logger: logger}, nil
}

func (a *App) Addr() string {
	return a.server.Addr
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// shutdownTimeout and closes the database.
func (a *App) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server started", "addr", a.server.Addr, "env", a.cfg.AppEnv)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		closeErr := a.Close()
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return closeErr
	case <-ctx.Done():
	}

	a.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := a.server.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		a.logger.Error("graceful shutdown failed", "error", shutdownErr)
	}
	<-errCh

	return errors.Join(shutdownErr, a.Close())
}

func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
