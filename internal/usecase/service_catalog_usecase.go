package usecase

import (
	"context"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

type IServiceCatalogUseCase interface {
	ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error)
	Seed(ctx context.Context, entries []entities.ServiceCatalogEntry) (int, error)
}

type ServiceCatalogUseCase struct {
	repo   interfaces.IServiceCatalogRepository
	logger *zerolog.Logger
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceCatalogRepository, logger *zerolog.Logger) *ServiceCatalogUseCase {
	l := logging.OrNop(logger).With().Str("component", "catalog").Logger()
	return &ServiceCatalogUseCase{repo: repo, logger: &l}
}

func (u *ServiceCatalogUseCase) ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error) {
	return u.repo.ListActive(ctx)
}

// Seed upserts every entry after validating all of them, so a bad entry
// leaves the catalog unchanged.
func (u *ServiceCatalogUseCase) Seed(ctx context.Context, entries []entities.ServiceCatalogEntry) (int, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return 0, err
		}
	}
	for i, e := range entries {
		if err := u.repo.Upsert(ctx, e); err != nil {
			u.logger.Error().Err(err).Str("service", e.ServiceName).Msg("seeding catalog failed")
			return i, err
		}
	}
	u.logger.Info().Int("entries", len(entries)).Msg("catalog seeded")
	return len(entries), nil
}
