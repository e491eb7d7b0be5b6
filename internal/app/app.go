package app

import (
	"context"
	"errors"
	"fmt"

	"repair_intake/internal/adapter/persistence/cache"
	"repair_intake/internal/adapter/persistence/memory"
	"repair_intake/internal/adapter/persistence/repository"
	"repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/database"
	"repair_intake/internal/infrastructure/export"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/infrastructure/payments"
	"repair_intake/internal/usecase"
	"repair_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Stores groups the persistence ports.
type Stores struct {
	Catalog  interfaces.IServiceCatalogRepository
	Slots    interfaces.IAppointmentSlotRepository
	Requests interfaces.IRepairRequestRepository
	Payments interfaces.IRepairPaymentRepository
}

// App wires configuration, storage and use cases. The HTTP server, the CLI
// and the background jobs all start from one.
type App struct {
	Config config.Config
	Shop   config.Shop
	Logger *zerolog.Logger

	DynamoDB *dynamodb.Client
	Redis    *redis.Client
	Stores   Stores

	Requests *usecase.RepairRequestUseCase
	Slots    *usecase.AppointmentSlotUseCase
	Calendar *usecase.CalendarUseCase
	Catalog  *usecase.ServiceCatalogUseCase
	Reports  *usecase.ReportUseCase
	Payments *usecase.RepairPaymentUseCase
}

func New(ctx context.Context, cfg config.Config, logger *zerolog.Logger) (*App, error) {
	logger = logging.OrNop(logger)
	shop, err := config.LoadShop(cfg.ShopConfig)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Shop: shop, Logger: logger}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		a.Stores = Stores{
			Catalog:  memory.NewServiceCatalogStore(shop.Catalog...),
			Slots:    memory.NewAppointmentSlotStore(),
			Requests: memory.NewRepairRequestStore(),
			Payments: memory.NewRepairPaymentStore(),
		}
		logger.Warn().Msg("using in-memory storage; data is lost on restart")
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, logger)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		a.DynamoDB = ddb
		a.Stores = Stores{
			Catalog:  repository.NewServiceCatalogDynamoRepository(ddb, cfg.Tables.Services),
			Slots:    repository.NewAppointmentSlotDynamoRepository(ddb, cfg.Tables.Slots),
			Requests: repository.NewRepairRequestDynamoRepository(ddb, cfg.Tables.Requests),
			Payments: repository.NewRepairPaymentDynamoRepository(ddb, cfg.Tables.Payments),
		}
	}

	if cfg.Redis.Addr != "" {
		a.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable; catalog cache will fall through")
		}
		a.Stores.Catalog = cache.NewServiceCatalogCache(a.Stores.Catalog, a.Redis, cfg.CatalogCacheTTL, logger)
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payment.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("mercado pago gateway not configured")
		} else {
			gateway = mp
		}
	}

	s := a.Stores
	a.Requests = usecase.NewRepairRequestUseCase(s.Catalog, s.Slots, s.Requests, logger)
	a.Slots = usecase.NewAppointmentSlotUseCase(s.Slots, shop.Schedule, logger)
	a.Calendar = usecase.NewCalendarUseCase(s.Slots, s.Requests, shop.Schedule)
	a.Catalog = usecase.NewServiceCatalogUseCase(s.Catalog, logger)
	a.Reports = usecase.NewReportUseCase(s.Requests, shop.Schedule, export.NewReportWriter)
	a.Payments = usecase.NewRepairPaymentUseCase(s.Payments, s.Requests, gateway, usecase.PaymentSettings{
		Mock:            cfg.Payment.Mock,
		AccessToken:     cfg.Payment.AccessToken,
		TestPayerEmail:  cfg.Payment.TestPayerEmail,
		TestPayerUserID: cfg.Payment.TestPayerUserID,
	}, logger)

	return a, nil
}

// Bootstrap opens the slot horizon of a fresh memory store. DynamoDB
// deployments are prepared with repairctl instead.
func (a *App) Bootstrap(ctx context.Context) error {
	if a.Config.StorageDriver != config.StorageMemory {
		return nil
	}
	n, err := a.Slots.EnsureHorizon(ctx)
	if err != nil {
		return err
	}
	a.Logger.Info().Int("slots", n).Msg("memory store bootstrapped")
	return nil
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}
