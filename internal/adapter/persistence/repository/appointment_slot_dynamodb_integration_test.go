package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"
	appconfig "repair_intake/internal/infrastructure/config"
	"repair_intake/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against DynamoDB Local, e.g.
//
//	docker run -p 8000:8000 amazon/dynamodb-local
//	DYNAMODB_TEST_ENDPOINT=http://localhost:8000 go test ./internal/adapter/persistence/repository/
const testEndpointEnv = "DYNAMODB_TEST_ENDPOINT"

func newLocalSlotRepository(t *testing.T) *AppointmentSlotDynamoRepository {
	t.Helper()
	endpoint := os.Getenv(testEndpointEnv)
	if endpoint == "" {
		t.Skipf("%s not set", testEndpointEnv)
	}
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, appconfig.AWS{
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	}, nil)
	require.NoError(t, err)

	prefix := fmt.Sprintf("it_%d_", time.Now().UnixNano())
	tables := appconfig.Tables{
		Services: prefix + "services",
		Slots:    prefix + "slots",
		Requests: prefix + "requests",
		Payments: prefix + "payments",
	}
	require.NoError(t, database.CreateTables(ctx, ddb, tables, nil))
	t.Cleanup(func() {
		for _, name := range []string{tables.Services, tables.Slots, tables.Requests, tables.Payments} {
			_, _ = ddb.DeleteTable(context.Background(), &dynamodb.DeleteTableInput{TableName: aws.String(name)})
		}
	})
	return NewAppointmentSlotDynamoRepository(ddb, tables.Slots)
}

func seedSlot(t *testing.T, r *AppointmentSlotDynamoRepository, key entities.SlotKey, capacity int) {
	t.Helper()
	n, err := r.CreateSlots(context.Background(), []entities.AppointmentSlot{
		{Date: key.Date, Time: key.Time, MaxCapacity: capacity, IsAvailable: true},
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAppointmentSlotDynamo_ReserveConditions(t *testing.T) {
	r := newLocalSlotRepository(t)
	ctx := context.Background()
	key := entities.SlotKey{Date: "2026-03-03", Time: "10:00"}
	seedSlot(t, r, key, 2)

	first, err := r.Reserve(ctx, key, "req-1", "a@example.com")
	require.NoError(t, err)
	assert.True(t, first.Fresh)

	again, err := r.Reserve(ctx, key, "req-1", "a@example.com")
	require.NoError(t, err, "a request already on the slot gets its booking back")
	assert.False(t, again.Fresh)
	assert.True(t, first.BookedAt.Equal(again.BookedAt))

	slot, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 1, slot.CurrentBookings)
	require.NoError(t, slot.Validate())

	_, err = r.Reserve(ctx, key, "req-2", "b@example.com")
	require.NoError(t, err)
	_, err = r.Reserve(ctx, key, "req-3", "c@example.com")
	assert.ErrorIs(t, err, entities.ErrSlotFull)

	_, err = r.Reserve(ctx, entities.SlotKey{Date: "2026-03-03", Time: "23:00"}, "req-1", "a@example.com")
	assert.ErrorIs(t, err, entities.ErrSlotNotFound)

	blocked := entities.SlotKey{Date: "2026-03-03", Time: "11:00"}
	seedSlot(t, r, blocked, 2)
	_, err = r.SetAvailability(ctx, blocked, false)
	require.NoError(t, err)
	_, err = r.Reserve(ctx, blocked, "req-1", "a@example.com")
	assert.ErrorIs(t, err, entities.ErrSlotFull)
}

func TestAppointmentSlotDynamo_ReleaseByIndex(t *testing.T) {
	r := newLocalSlotRepository(t)
	ctx := context.Background()
	key := entities.SlotKey{Date: "2026-03-04", Time: "09:00"}
	seedSlot(t, r, key, 3)

	for _, id := range []string{"req-1", "req-2", "req-3"} {
		_, err := r.Reserve(ctx, key, id, id+"@example.com")
		require.NoError(t, err)
	}

	// Removing the head shifts the remaining bookings down one index.
	require.NoError(t, r.Release(ctx, key, "req-1"))
	require.NoError(t, r.Release(ctx, key, "req-3"))

	slot, err := r.Get(ctx, key)
	require.NoError(t, err)
	require.NoError(t, slot.Validate())
	assert.Equal(t, 1, slot.CurrentBookings)
	assert.True(t, slot.HasBooking("req-2"))

	assert.ErrorIs(t, r.Release(ctx, key, "req-1"), entities.ErrBookingNotFound)

	// The id set is kept in step with the list, so a released request can book again.
	again, err := r.Reserve(ctx, key, "req-1", "a@example.com")
	require.NoError(t, err)
	assert.True(t, again.Fresh)
}

func TestAppointmentSlotDynamo_ConcurrentReleasesAllLand(t *testing.T) {
	r := newLocalSlotRepository(t)
	ctx := context.Background()
	key := entities.SlotKey{Date: "2026-03-05", Time: "14:00"}
	seedSlot(t, r, key, releaseAttempts)

	ids := make([]string, releaseAttempts)
	for i := range ids {
		ids[i] = fmt.Sprintf("req-%d", i)
		_, err := r.Reserve(ctx, key, ids[i], ids[i]+"@example.com")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = r.Release(ctx, key, id)
		}(i, id)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "release %s", ids[i])
	}
	slot, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, slot.CurrentBookings)
	assert.Empty(t, slot.BookedBy)
}

func TestAppointmentSlotDynamo_ConcurrentReserveNeverOverbooks(t *testing.T) {
	r := newLocalSlotRepository(t)
	ctx := context.Background()
	key := entities.SlotKey{Date: "2026-03-06", Time: "12:00"}
	seedSlot(t, r, key, 3)

	const callers = 10
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("req-%d", i)
			_, err := r.Reserve(ctx, key, id, id+"@example.com")
			if err == nil {
				mu.Lock()
				won++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, entities.ErrSlotFull)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, won)
	slot, err := r.Get(ctx, key)
	require.NoError(t, err)
	require.NoError(t, slot.Validate())
	assert.Equal(t, 3, slot.CurrentBookings)
}
