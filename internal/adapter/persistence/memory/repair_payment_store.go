package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"
)

type RepairPaymentStore struct {
	mu       sync.RWMutex
	payments map[string]entities.RepairPayment
}

var _ interfaces.IRepairPaymentRepository = (*RepairPaymentStore)(nil)

func NewRepairPaymentStore() *RepairPaymentStore {
	return &RepairPaymentStore{payments: make(map[string]entities.RepairPayment)}
}

func (s *RepairPaymentStore) Create(_ context.Context, p entities.RepairPayment) (entities.RepairPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payments[p.ID]; exists {
		return entities.RepairPayment{}, fmt.Errorf("%w: %s", entities.ErrPaymentAlreadyExists, p.ID)
	}
	s.payments[p.ID] = p
	return p, nil
}

func (s *RepairPaymentStore) GetByID(_ context.Context, id string) (entities.RepairPayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments[id], nil
}

func (s *RepairPaymentStore) ListByRequestID(_ context.Context, requestID string) ([]entities.RepairPayment, error) {
	s.mu.RLock()
	out := make([]entities.RepairPayment, 0)
	for _, p := range s.payments {
		if p.RequestID == requestID {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b entities.RepairPayment) int {
		return a.Date.Compare(b.Date)
	})
	return out, nil
}
