package memory

import (
	"context"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairPaymentStore(t *testing.T) {
	ctx := context.Background()
	s := NewRepairPaymentStore()
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	later := entities.RepairPayment{ID: "p2", RequestID: "req-1", Amount: decimal.NewFromInt(10), Date: base.Add(time.Hour), Status: entities.PaymentStatusApproved}
	earlier := entities.RepairPayment{ID: "p1", RequestID: "req-1", Amount: decimal.NewFromInt(10), Date: base, Status: entities.PaymentStatusRejected}
	other := entities.RepairPayment{ID: "p3", RequestID: "req-2", Amount: decimal.NewFromInt(5), Date: base}

	for _, p := range []entities.RepairPayment{later, earlier, other} {
		_, err := s.Create(ctx, p)
		require.NoError(t, err)
	}

	_, err := s.Create(ctx, earlier)
	assert.ErrorIs(t, err, entities.ErrPaymentAlreadyExists)

	got, err := s.ListByRequestID(ctx, "req-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)

	missing, err := s.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	none, err := s.ListByRequestID(ctx, "req-9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
