package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-checkout/internal/config"
	"github.com/fsdevblog/groph-checkout/internal/repository/memrepo"
	"github.com/fsdevblog/groph-checkout/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/groph-checkout/internal/service"
	"github.com/fsdevblog/groph-checkout/internal/transport/api"
	"github.com/fsdevblog/groph-checkout/internal/transport/wompi"
	"github.com/fsdevblog/groph-checkout/internal/transport/wompi/client"
	"github.com/fsdevblog/groph-checkout/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
	seedTimeout       = 10 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address": a.Config.RunAddress,
		"storage": a.Config.Storage,
		"wompi":   a.Config.WompiAPIURL,
	}).Info("starting checkout app")

	unitOfWork, closeStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %s", storageErr.Error())
	}
	defer closeStorage()

	gateway := wompi.New(
		client.New(a.Config.WompiAPIURL, a.Config.WompiPublicKey, a.Config.WompiPrivateKey),
		a.Config.WompiIntegritySecret,
		a.Logger,
	).
		SetPollAttempts(a.Config.WompiPollAttempts).
		SetPollInterval(a.Config.WompiPollInterval).
		SetDefaultEmail(a.Config.WompiDefaultEmail)

	services, sErr := service.Factory(unitOfWork, gateway, service.TransactionOptions{
		BaseCharge:   a.Config.BaseCharge,
		ShippingCost: a.Config.ShippingCost,
	}, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if a.Config.SeedCatalog {
		if seedErr := a.seedCatalog(notifyCtx, services.ProductService); seedErr != nil {
			return fmt.Errorf("app run: %s", seedErr.Error())
		}
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		ProductService:     services.ProductService,
		CustomerService:    services.CustomerService,
		DeliveryService:    services.DeliveryService,
		TransactionService: services.TransactionService,
		WompiService:       gateway,
		AdminJWTSecret:     []byte(a.Config.AdminJWTSecret),
		PayTimeout:         a.Config.PayTimeout(),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initStorage выбирает хранилище по конфигурации. Возвращаемая функция освобождает ресурсы хранилища.
func (a *App) initStorage(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.Storage == config.StorageMemory {
		a.Logger.Warn("using in-memory storage, data will be lost on restart")
		return memrepo.NewUnitOfWork(), func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("init storage: %s", connErr.Error())
	}

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init storage: %s", uowErr.Error())
	}
	return unitOfWork, conn.Close, nil
}

func (a *App) seedCatalog(ctx context.Context, productService *service.ProductService) error {
	seedCtx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	created, err := productService.SeedCatalog(seedCtx, service.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("seed catalog: %s", err.Error())
	}
	if created > 0 {
		a.Logger.Infof("seeded catalog with %d products", created)
	}
	return nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
		repoargs.DeliveryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDeliveryRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
