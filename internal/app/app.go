package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/orders-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/orders-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/orders-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/orders-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/orders-backend/internal/repository/pgdb/converter/generated"
	redisRepo "github.com/DRSN-tech/orders-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/orders-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/orders-backend/internal/usecase"
	"github.com/DRSN-tech/orders-backend/pkg/clients"
	"github.com/DRSN-tech/orders-backend/pkg/closer"
	"github.com/DRSN-tech/orders-backend/pkg/e"
	"github.com/DRSN-tech/orders-backend/pkg/logger"
	"github.com/DRSN-tech/orders-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает зависимости сервиса заказов и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	c := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	customerConv := pgdbConv.NewCustomerConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	orderItemConv := pgdbConv.NewOrderItemConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv, orderItemConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redisRepo.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	// Недоступность Kafka не блокирует оформление заказов:
	// события копятся в outbox и будут доставлены после восстановления.
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("failed to ensure kafka topic, events will be delivered later: %v", err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	c.Add(func(ctx context.Context) error {
		worker.Stop()
		return nil
	})

	orderUC := usecase.NewOrderUC(
		customerRepo,
		productRepo,
		orderRepo,
		outboxRepo,
		cacheRepo,
		db.Pool,
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(orderUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		worker:  worker,
		closer:  c,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала остановки.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.worker.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	// Отмена контекста останавливает фоновые циклы воркера,
	// затем closer в порядке LIFO закрывает сервер и клиенты.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
