package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"
)

type ServiceCatalogStore struct {
	mu      sync.RWMutex
	entries map[string]entities.ServiceCatalogEntry
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogStore)(nil)

func NewServiceCatalogStore(seed ...entities.ServiceCatalogEntry) *ServiceCatalogStore {
	s := &ServiceCatalogStore{entries: make(map[string]entities.ServiceCatalogEntry, len(seed))}
	for _, e := range seed {
		s.entries[e.ServiceName] = e
	}
	return s
}

func (s *ServiceCatalogStore) LookupActivePrices(_ context.Context, names []string) (map[string]entities.ServiceCatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]entities.ServiceCatalogEntry, len(names))
	var missing []string
	for _, name := range names {
		e, ok := s.entries[name]
		if !ok || !e.IsActive {
			missing = append(missing, name)
			continue
		}
		found[name] = e
	}
	if len(missing) > 0 {
		return nil, &entities.UnknownServiceError{Names: missing}
	}
	return found, nil
}

func (s *ServiceCatalogStore) ListActive(_ context.Context) ([]entities.ServiceCatalogEntry, error) {
	s.mu.RLock()
	out := make([]entities.ServiceCatalogEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.IsActive {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b entities.ServiceCatalogEntry) int {
		return strings.Compare(a.ServiceName, b.ServiceName)
	})
	return out, nil
}

func (s *ServiceCatalogStore) Upsert(_ context.Context, e entities.ServiceCatalogEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ServiceName] = e
	return nil
}
