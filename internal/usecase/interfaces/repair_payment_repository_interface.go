package interfaces

import (
	"context"

	"repair_intake/internal/domain/entities"
)

// IRepairPaymentRepository abstracts persistence for RepairPayment.

type IRepairPaymentRepository interface {
	Create(ctx context.Context, p entities.RepairPayment) (entities.RepairPayment, error)
	GetByID(ctx context.Context, id string) (entities.RepairPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.RepairPayment, error)
}
