package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"
)

type RepairRequestStore struct {
	mu       sync.RWMutex
	requests map[string]entities.RepairRequest
}

var _ interfaces.IRepairRequestRepository = (*RepairRequestStore)(nil)

func NewRepairRequestStore() *RepairRequestStore {
	return &RepairRequestStore{requests: make(map[string]entities.RepairRequest)}
}

func (s *RepairRequestStore) Create(_ context.Context, r entities.RepairRequest) (entities.RepairRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[r.ID]; exists {
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", entities.ErrRepairRequestExists, r.ID)
	}
	s.requests[r.ID] = r.Clone()
	return r.Clone(), nil
}

func (s *RepairRequestStore) GetByID(_ context.Context, id string) (entities.RepairRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return entities.RepairRequest{}, nil
	}
	return r.Clone(), nil
}

func (s *RepairRequestStore) Update(_ context.Context, r entities.RepairRequest) (entities.RepairRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[r.ID]
	if !ok || stored.Version != r.Version {
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", entities.ErrVersionConflict, r.ID)
	}
	next := r.Clone()
	next.SubmittedAt = stored.SubmittedAt
	next.Version = stored.Version + 1
	s.requests[r.ID] = next
	return next.Clone(), nil
}

func (s *RepairRequestStore) ListIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.requests))
	for id := range s.requests {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *RepairRequestStore) ListAll(_ context.Context) ([]entities.RepairRequest, error) {
	return s.filter(func(entities.RepairRequest) bool { return true }), nil
}

func (s *RepairRequestStore) ListByCustomerEmail(_ context.Context, email string) ([]entities.RepairRequest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.filter(func(r entities.RepairRequest) bool {
		return strings.ToLower(r.Customer.Email) == email
	}), nil
}

func (s *RepairRequestStore) ListByCustomerPhone(_ context.Context, phone string) ([]entities.RepairRequest, error) {
	return s.filter(func(r entities.RepairRequest) bool {
		return r.Customer.PhoneNumber == phone
	}), nil
}

func (s *RepairRequestStore) ListByStatus(_ context.Context, status entities.RepairStatus) ([]entities.RepairRequest, error) {
	return s.filter(func(r entities.RepairRequest) bool {
		return r.Status == status
	}), nil
}

func (s *RepairRequestStore) ListByDevice(_ context.Context, brand, model string) ([]entities.RepairRequest, error) {
	return s.filter(func(r entities.RepairRequest) bool {
		return r.Device.Brand == brand && r.Device.Model == model
	}), nil
}

func (s *RepairRequestStore) ListByAppointmentDate(_ context.Context, from, to string) ([]entities.RepairRequest, error) {
	out := s.filter(func(r entities.RepairRequest) bool {
		return r.Appointment != nil && r.Appointment.Date >= from && r.Appointment.Date <= to
	})
	slices.SortStableFunc(out, func(a, b entities.RepairRequest) int {
		return strings.Compare(a.Appointment.Key().String(), b.Appointment.Key().String())
	})
	return out, nil
}

func (s *RepairRequestStore) ListRecent(_ context.Context, limit int) ([]entities.RepairRequest, error) {
	out := s.filter(func(entities.RepairRequest) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// filter returns clones of the matching requests, newest submission first.
func (s *RepairRequestStore) filter(match func(entities.RepairRequest) bool) []entities.RepairRequest {
	s.mu.RLock()
	out := make([]entities.RepairRequest, 0)
	for _, r := range s.requests {
		if match(r) {
			out = append(out, r.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b entities.RepairRequest) int {
		if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}
