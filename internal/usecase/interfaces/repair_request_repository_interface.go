package interfaces

import (
	"context"

	"repair_intake/internal/domain/entities"
)

// IRepairRequestRepository persists repair requests.
//
//   - Create fails with entities.ErrRepairRequestExists for a duplicate id.
//   - GetByID returns a zero request (ID == "") when the id is unknown.
//   - Update writes r only if the stored version equals r.Version and returns
//     the stored request with the incremented version; otherwise it fails with
//     entities.ErrVersionConflict.
//   - ListByStatus and ListRecent order by submission time, newest first.

type IRepairRequestRepository interface {
	Create(ctx context.Context, r entities.RepairRequest) (entities.RepairRequest, error)
	GetByID(ctx context.Context, id string) (entities.RepairRequest, error)
	Update(ctx context.Context, r entities.RepairRequest) (entities.RepairRequest, error)
	ListIDs(ctx context.Context) ([]string, error)
	ListAll(ctx context.Context) ([]entities.RepairRequest, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.RepairRequest, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]entities.RepairRequest, error)
	ListByStatus(ctx context.Context, status entities.RepairStatus) ([]entities.RepairRequest, error)
	ListByDevice(ctx context.Context, brand, model string) ([]entities.RepairRequest, error)
	ListByAppointmentDate(ctx context.Context, from, to string) ([]entities.RepairRequest, error)
	ListRecent(ctx context.Context, limit int) ([]entities.RepairRequest, error)
}
