package interfaces

import (
	"context"

	"repair_intake/internal/domain/entities"
)

// IServiceCatalogRepository is the lookup-only price list used when quoting.
//
// LookupActivePrices fails with entities.ErrUnknownService (as an
// *entities.UnknownServiceError listing every offending name) when any name
// has no active entry. It never returns a partial map.

type IServiceCatalogRepository interface {
	LookupActivePrices(ctx context.Context, names []string) (map[string]entities.ServiceCatalogEntry, error)
	ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error)
	Upsert(ctx context.Context, e entities.ServiceCatalogEntry) error
}
