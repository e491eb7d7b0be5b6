package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/domain/schedule"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// SlotQuery selects a day range either by preset name or by explicit dates.
// Explicit dates win when both are given.
type SlotQuery struct {
	Range string
	From  string
	To    string
	Limit int
}

// DayRange is an inclusive range of dates (YYYY-MM-DD).
type DayRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type IAppointmentSlotUseCase interface {
	FindAvailable(ctx context.Context, q SlotQuery) (DayRange, []entities.AppointmentSlot, error)
	EnsureHorizon(ctx context.Context) (int, error)
	SetAvailability(ctx context.Context, date, clock string, available bool) (entities.AppointmentSlot, error)
	Schedule() schedule.Schedule
}

type AppointmentSlotUseCase struct {
	slots    interfaces.IAppointmentSlotRepository
	schedule schedule.Schedule
	logger   *zerolog.Logger
	now      func() time.Time
}

var _ IAppointmentSlotUseCase = (*AppointmentSlotUseCase)(nil)

func NewAppointmentSlotUseCase(slots interfaces.IAppointmentSlotRepository, sched schedule.Schedule, logger *zerolog.Logger) *AppointmentSlotUseCase {
	l := logging.OrNop(logger).With().Str("component", "slots").Logger()
	return &AppointmentSlotUseCase{
		slots:    slots,
		schedule: sched,
		logger:   &l,
		now:      time.Now,
	}
}

func (u *AppointmentSlotUseCase) Schedule() schedule.Schedule { return u.schedule }

// FindAvailable lists bookable slots in the queried range, stopping after
// q.Limit slots when it is positive.
func (u *AppointmentSlotUseCase) FindAvailable(ctx context.Context, q SlotQuery) (DayRange, []entities.AppointmentSlot, error) {
	r, err := resolveDayRange(u.schedule, q.Range, q.From, q.To, u.now())
	if err != nil {
		return DayRange{}, nil, err
	}

	out := []entities.AppointmentSlot{}
	for slot, err := range u.slots.FindAvailable(ctx, r.From, r.To) {
		if err != nil {
			return DayRange{}, nil, err
		}
		out = append(out, slot)
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return r, out, nil
}

// EnsureHorizon creates the slots of the next HorizonDays days that do not
// exist yet. Existing slots, and their bookings, are left untouched.
func (u *AppointmentSlotUseCase) EnsureHorizon(ctx context.Context) (int, error) {
	slots := u.schedule.SlotsFor(u.schedule.Today(u.now()), u.schedule.HorizonDays)
	if len(slots) == 0 {
		return 0, nil
	}
	created, err := u.slots.CreateSlots(ctx, slots)
	if err != nil {
		u.logger.Error().Err(err).Msg("creating horizon slots failed")
		return created, err
	}
	if created > 0 {
		u.logger.Info().Int("created", created).Int("horizon_days", u.schedule.HorizonDays).Msg("slots created")
	}
	return created, nil
}

func (u *AppointmentSlotUseCase) SetAvailability(ctx context.Context, date, clock string, available bool) (entities.AppointmentSlot, error) {
	key, err := entities.NewSlotKey(strings.TrimSpace(date), strings.TrimSpace(clock))
	if err != nil {
		return entities.AppointmentSlot{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	slot, err := u.slots.SetAvailability(ctx, key, available)
	if err != nil {
		return entities.AppointmentSlot{}, err
	}
	u.logger.Info().Str("slot", key.String()).Bool("available", available).Msg("slot availability changed")
	return slot, nil
}

// resolveDayRange turns a preset or an explicit from/to pair into dates.
// A missing "to" means the same day as "from".
func resolveDayRange(s schedule.Schedule, name, from, to string, now time.Time) (DayRange, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		first, last := s.ResolveRange(name, now)
		return DayRange{From: first.Format(entities.DateLayout), To: last.Format(entities.DateLayout)}, nil
	}
	if from == "" {
		from = s.Today(now).Format(entities.DateLayout)
	}
	if to == "" {
		to = from
	}
	f, err := time.Parse(entities.DateLayout, from)
	if err != nil {
		return DayRange{}, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidPayload)
	}
	t, err := time.Parse(entities.DateLayout, to)
	if err != nil {
		return DayRange{}, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidPayload)
	}
	if t.Before(f) {
		return DayRange{}, fmt.Errorf("%w: to is before from", ErrInvalidPayload)
	}
	return DayRange{From: from, To: to}, nil
}
