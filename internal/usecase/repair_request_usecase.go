package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/infrastructure/metrics"
	"repair_intake/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// idempotencyNamespace derives request ids from client idempotency keys.
var idempotencyNamespace = uuid.MustParse("6f1c1c3e-9b0a-4c8e-9a57-2d1f4f6b8e21")

// IRepairRequestUseCase coordinates the catalog, the slot store and the
// request store.
//
// Submit persists the request before reserving its slot. A request is linked
// to a slot only after the reservation succeeded, and a reservation whose link
// could not be written is released again, so a request never references a
// slot that does not hold its booking.
type IRepairRequestUseCase interface {
	Submit(ctx context.Context, payload SubmitPayload, idempotencyKey string) (SubmitResult, error)
	Cancel(ctx context.Context, id string) (entities.RepairRequest, error)
	Complete(ctx context.Context, id string, actualPrices map[string]decimal.Decimal) (entities.RepairRequest, error)
	AdvanceStatus(ctx context.Context, id string, target entities.RepairStatus) (entities.RepairRequest, error)
	BookAppointment(ctx context.Context, id, date, clock string) (entities.RepairRequest, error)
	ReconcileReleases(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (entities.RepairRequest, error)
	ListIDs(ctx context.Context) ([]string, error)
	Search(ctx context.Context, filter RequestFilter) ([]entities.RepairRequest, error)
}

type RepairRequestUseCase struct {
	catalog  interfaces.IServiceCatalogRepository
	slots    interfaces.IAppointmentSlotRepository
	requests interfaces.IRepairRequestRepository
	logger   *zerolog.Logger
	now      func() time.Time
}

var _ IRepairRequestUseCase = (*RepairRequestUseCase)(nil)

func NewRepairRequestUseCase(
	catalog interfaces.IServiceCatalogRepository,
	slots interfaces.IAppointmentSlotRepository,
	requests interfaces.IRepairRequestRepository,
	logger *zerolog.Logger,
) *RepairRequestUseCase {
	l := logging.OrNop(logger).With().Str("component", "repair_requests").Logger()
	return &RepairRequestUseCase{
		catalog:  catalog,
		slots:    slots,
		requests: requests,
		logger:   &l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *RepairRequestUseCase) Submit(ctx context.Context, payload SubmitPayload, idempotencyKey string) (SubmitResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	p, err := normalizeSubmitPayload(payload)
	if err != nil {
		metrics.IncSubmission("invalid")
		return SubmitResult{}, err
	}

	entries, err := u.catalog.LookupActivePrices(ctx, p.SelectedServices)
	if err != nil {
		if errors.Is(err, entities.ErrUnknownService) {
			metrics.IncSubmission("unknown_service")
		}
		return SubmitResult{}, err
	}

	repairs := make([]entities.RepairLineItem, 0, len(p.SelectedServices))
	for _, name := range p.SelectedServices {
		e := entries[name]
		repairs = append(repairs, entities.RepairLineItem{
			ServiceName:              e.ServiceName,
			QuotedPrice:              e.BasePrice,
			EstimatedDurationMinutes: e.EstimatedDurationMinutes,
		})
	}

	now := u.now()
	req := entities.RepairRequest{
		ID:               requestID(idempotencyKey),
		Customer:         p.Customer,
		Device:           p.Device,
		Repairs:          repairs,
		ServiceType:      p.ServiceType,
		Status:           entities.RepairStatusPendingQuote,
		TotalQuotedPrice: entities.SumQuoted(repairs),
		SubmittedAt:      now,
		UpdatedAt:        now,
		Version:          1,
	}
	if p.AdditionalNotes != "" {
		notes := p.AdditionalNotes
		req.AdditionalNotes = &notes
	}

	created, replayed, err := u.create(ctx, req, idempotencyKey)
	if err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{Request: created, Appointment: AppointmentNotRequested, Replayed: replayed}
	switch {
	case created.Appointment != nil:
		result.Appointment = AppointmentReserved
	case p.Appointment == nil:
	case created.Status.IsTerminal():
		result.Appointment = AppointmentUnavailable
		result.Reason = fmt.Errorf("%w: request is %s", ErrAppointmentUnavailable, created.Status)
	default:
		key := entities.SlotKey{Date: p.Appointment.Date, Time: p.Appointment.Time}
		linked, reason := u.attachAppointment(ctx, created, key)
		result.Request = linked
		if reason != nil {
			result.Appointment = AppointmentUnavailable
			result.Reason = reason
		} else {
			result.Appointment = AppointmentReserved
		}
	}

	metrics.IncSubmission(string(result.Appointment))
	u.logger.Info().
		Str("request_id", result.Request.ID).
		Str("status", string(result.Request.Status)).
		Str("appointment", string(result.Appointment)).
		Bool("replayed", replayed).
		Msg("repair request submitted")
	return result, nil
}

// create persists req. With an idempotency key, a duplicate id means the
// submission was already accepted and the stored request is returned.
func (u *RepairRequestUseCase) create(ctx context.Context, req entities.RepairRequest, idempotencyKey string) (entities.RepairRequest, bool, error) {
	created, err := u.requests.Create(ctx, req)
	if err == nil {
		return created, false, nil
	}
	if idempotencyKey == "" || !errors.Is(err, entities.ErrRepairRequestExists) {
		return entities.RepairRequest{}, false, err
	}
	existing, gerr := u.requests.GetByID(ctx, req.ID)
	if gerr != nil {
		return entities.RepairRequest{}, false, gerr
	}
	if existing.ID == "" {
		return entities.RepairRequest{}, false, err
	}
	return existing, true, nil
}

// attachAppointment reserves key for req and links it. It returns the latest
// stored request and, when the request ends up without an appointment, a
// reason wrapping ErrAppointmentUnavailable.
func (u *RepairRequestUseCase) attachAppointment(ctx context.Context, req entities.RepairRequest, key entities.SlotKey) (entities.RepairRequest, error) {
	log := u.logger.With().Str("request_id", req.ID).Str("slot", key.String()).Logger()

	token, err := u.slots.Reserve(ctx, key, req.ID, req.Customer.Email)
	switch {
	case err == nil:
		metrics.IncReservation("reserved")
	case errors.Is(err, entities.ErrSlotFull):
		metrics.IncReservation("full")
		log.Info().Msg("slot full")
		return req, fmt.Errorf("%w: %w", ErrAppointmentUnavailable, err)
	case errors.Is(err, entities.ErrSlotNotFound):
		metrics.IncReservation("not_found")
		log.Info().Msg("slot not found")
		return req, fmt.Errorf("%w: %w", ErrAppointmentUnavailable, err)
	default:
		// The write may or may not have been applied.
		metrics.IncReservation("error")
		log.Error().Err(err).Msg("reserve failed")
		if current, ok := u.linkedTo(ctx, req.ID, key); ok {
			return current, nil
		}
		if rerr := u.compensate(ctx, key, req.ID); rerr != nil {
			return req, fmt.Errorf("%w: %w", ErrAppointmentUnavailable, errors.Join(err, rerr))
		}
		return req, fmt.Errorf("%w: %w", ErrAppointmentUnavailable, err)
	}

	linked := req.Clone()
	confirmedAt := token.BookedAt
	linked.Appointment = &entities.Appointment{Date: key.Date, Time: key.Time, ConfirmedAt: &confirmedAt}
	now := u.now()
	if linked.ServiceType == entities.ServiceTypeWalkIn && linked.Status.CanTransitionTo(entities.RepairStatusConfirmed) {
		_ = linked.Transition(entities.RepairStatusConfirmed, now)
	} else {
		linked.Touch(now)
	}

	updated, err := u.requests.Update(ctx, linked)
	if err == nil {
		if updated.Status != req.Status {
			metrics.IncTransition(string(updated.Status))
		}
		log.Info().Str("status", string(updated.Status)).Msg("appointment linked")
		return updated, nil
	}

	// A concurrent call for the same request may have linked the same booking.
	if current, ok := u.linkedTo(ctx, req.ID, key); ok {
		log.Info().Err(err).Msg("appointment already linked by a concurrent call")
		return current, nil
	}
	if !token.Fresh {
		// The booking was created by another call, which owns its outcome.
		log.Warn().Err(err).Msg("linking appointment failed, booking left to its creator")
		return req, fmt.Errorf("%w: link slot %s: %w", ErrAppointmentUnavailable, key, err)
	}

	log.Warn().Err(err).Msg("linking appointment failed, releasing slot")
	if rerr := u.compensate(ctx, key, req.ID); rerr != nil {
		return req, fmt.Errorf("%w: link slot %s: %w", ErrAppointmentUnavailable, key, errors.Join(err, rerr))
	}
	return req, fmt.Errorf("%w: link slot %s: %w", ErrAppointmentUnavailable, key, err)
}

// linkedTo reports whether the stored request already references key.
func (u *RepairRequestUseCase) linkedTo(ctx context.Context, id string, key entities.SlotKey) (entities.RepairRequest, bool) {
	current, err := u.requests.GetByID(ctx, id)
	if err != nil || current.ID == "" || current.Appointment == nil {
		return entities.RepairRequest{}, false
	}
	if current.Appointment.ReleasePending || current.Appointment.Key() != key {
		return entities.RepairRequest{}, false
	}
	return current, true
}

// compensate undoes a reservation that is not referenced by its request.
func (u *RepairRequestUseCase) compensate(ctx context.Context, key entities.SlotKey, requestID string) error {
	err := u.slots.Release(ctx, key, requestID)
	if err == nil || errors.Is(err, entities.ErrBookingNotFound) {
		metrics.IncRelease("compensated")
		return nil
	}
	metrics.IncRelease("compensation_failed")
	u.logger.Error().Err(err).Str("request_id", requestID).Str("slot", key.String()).
		Msg("compensating release failed; slot holds an orphaned booking")
	return err
}

func (u *RepairRequestUseCase) Cancel(ctx context.Context, id string) (entities.RepairRequest, error) {
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if req.Status.IsTerminal() {
		return entities.RepairRequest{}, fmt.Errorf("%w: cannot cancel a %s request", ErrInvalidState, req.Status)
	}

	cancelled := req.Clone()
	if err := cancelled.Transition(entities.RepairStatusCancelled, u.now()); err != nil {
		return entities.RepairRequest{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if cancelled.Appointment != nil {
		// Unconfirmed until the slot confirms the release.
		cancelled.Appointment.ConfirmedAt = nil
		cancelled.Appointment.ReleasePending = true
	}

	updated, err := u.save(ctx, cancelled)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	metrics.IncTransition(string(entities.RepairStatusCancelled))
	u.logger.Info().Str("request_id", updated.ID).Msg("repair request cancelled")

	if updated.Appointment == nil {
		return updated, nil
	}
	released, _ := u.releaseAppointment(ctx, updated)
	return released, nil
}

// releaseAppointment frees the slot held by a cancelled request and clears
// the reference. On failure the request keeps its release-pending appointment
// for ReconcileReleases.
func (u *RepairRequestUseCase) releaseAppointment(ctx context.Context, req entities.RepairRequest) (entities.RepairRequest, bool) {
	key := req.Appointment.Key()
	log := u.logger.With().Str("request_id", req.ID).Str("slot", key.String()).Logger()

	err := u.slots.Release(ctx, key, req.ID)
	switch {
	case err == nil:
		metrics.IncRelease("released")
	case errors.Is(err, entities.ErrBookingNotFound):
		metrics.IncRelease("not_found")
		log.Warn().Msg("no booking to release; clearing appointment reference")
	default:
		metrics.IncRelease("failed")
		log.Error().Err(err).Msg("slot release failed; appointment left pending release")
		return req, false
	}

	cleared := req.Clone()
	cleared.Appointment = nil
	cleared.Touch(u.now())
	updated, err := u.requests.Update(ctx, cleared)
	if err != nil {
		log.Warn().Err(err).Msg("slot released but appointment reference not cleared")
		return req, true
	}
	return updated, true
}

func (u *RepairRequestUseCase) ReconcileReleases(ctx context.Context) (int, error) {
	cancelled, err := u.requests.ListByStatus(ctx, entities.RepairStatusCancelled)
	if err != nil {
		return 0, err
	}
	released := 0
	for _, req := range cancelled {
		if err := ctx.Err(); err != nil {
			return released, err
		}
		if req.Appointment == nil {
			continue
		}
		if _, ok := u.releaseAppointment(ctx, req); ok {
			released++
		}
	}
	if released > 0 {
		u.logger.Info().Int("released", released).Msg("reconciled pending slot releases")
	}
	return released, nil
}

func (u *RepairRequestUseCase) Complete(ctx context.Context, id string, actualPrices map[string]decimal.Decimal) (entities.RepairRequest, error) {
	if len(actualPrices) == 0 {
		return entities.RepairRequest{}, fmt.Errorf("%w: actual_prices is required", ErrInvalidPayload)
	}
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if req.Status != entities.RepairStatusInProgress && req.Status != entities.RepairStatusConfirmed {
		return entities.RepairRequest{}, fmt.Errorf("%w: cannot complete a %s request", ErrInvalidState, req.Status)
	}

	index := make(map[string]int, len(req.Repairs))
	for i, it := range req.Repairs {
		index[it.ServiceName] = i
	}
	var problems []string
	prices := make(map[string]decimal.Decimal, len(actualPrices))
	for raw, price := range actualPrices {
		name := strings.TrimSpace(raw)
		if _, dup := prices[name]; dup {
			problems = append(problems, fmt.Sprintf("%q is given more than once", name))
			continue
		}
		prices[name] = price
		if _, ok := index[name]; !ok {
			problems = append(problems, fmt.Sprintf("%q is not part of this request", name))
			continue
		}
		if price.IsNegative() {
			problems = append(problems, fmt.Sprintf("%q has a negative price", name))
		}
	}
	if len(problems) > 0 {
		slices.Sort(problems)
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(problems, "; "))
	}

	next := req.Clone()
	for name, price := range prices {
		p := price
		next.Repairs[index[name]].ActualPrice = &p
	}

	now := u.now()
	if next.AllPriced() {
		total := next.SumActual()
		next.TotalActualPrice = &total
		if err := next.Transition(entities.RepairStatusCompleted, now); err != nil {
			return entities.RepairRequest{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
	} else {
		next.Touch(now)
	}

	updated, err := u.save(ctx, next)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if updated.Status == entities.RepairStatusCompleted {
		metrics.IncTransition(string(entities.RepairStatusCompleted))
	}
	u.logger.Info().Str("request_id", updated.ID).Str("status", string(updated.Status)).
		Int("priced", len(actualPrices)).Msg("actual prices recorded")
	return updated, nil
}

func (u *RepairRequestUseCase) AdvanceStatus(ctx context.Context, id string, target entities.RepairStatus) (entities.RepairRequest, error) {
	switch target {
	case entities.RepairStatusQuoted, entities.RepairStatusConfirmed, entities.RepairStatusInProgress:
	default:
		return entities.RepairRequest{}, fmt.Errorf("%w: status %q cannot be set directly", ErrInvalidPayload, target)
	}

	req, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	next := req.Clone()
	if err := next.Transition(target, u.now()); err != nil {
		return entities.RepairRequest{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	updated, err := u.save(ctx, next)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	metrics.IncTransition(string(target))
	u.logger.Info().Str("request_id", updated.ID).Str("from", string(req.Status)).Str("to", string(target)).Msg("status advanced")
	return updated, nil
}

func (u *RepairRequestUseCase) BookAppointment(ctx context.Context, id, date, clock string) (entities.RepairRequest, error) {
	key, err := entities.NewSlotKey(strings.TrimSpace(date), strings.TrimSpace(clock))
	if err != nil {
		return entities.RepairRequest{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	req, err := u.load(ctx, id)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if req.Status.IsTerminal() {
		return entities.RepairRequest{}, fmt.Errorf("%w: cannot book a %s request", ErrInvalidState, req.Status)
	}
	if req.Appointment != nil {
		return entities.RepairRequest{}, fmt.Errorf("%w: request already has an appointment on %s", ErrInvalidState, req.Appointment.Key())
	}
	return u.attachAppointment(ctx, req, key)
}

func (u *RepairRequestUseCase) GetByID(ctx context.Context, id string) (entities.RepairRequest, error) {
	return u.load(ctx, id)
}

func (u *RepairRequestUseCase) ListIDs(ctx context.Context) ([]string, error) {
	return u.requests.ListIDs(ctx)
}

func (u *RepairRequestUseCase) Search(ctx context.Context, f RequestFilter) ([]entities.RepairRequest, error) {
	switch {
	case strings.TrimSpace(f.Email) != "":
		return u.requests.ListByCustomerEmail(ctx, strings.ToLower(strings.TrimSpace(f.Email)))
	case strings.TrimSpace(f.Phone) != "":
		return u.requests.ListByCustomerPhone(ctx, strings.TrimSpace(f.Phone))
	case f.Status != "":
		if !f.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPayload, f.Status)
		}
		return u.requests.ListByStatus(ctx, f.Status)
	case f.Brand != "" || f.Model != "":
		if strings.TrimSpace(f.Brand) == "" || strings.TrimSpace(f.Model) == "" {
			return nil, fmt.Errorf("%w: brand and model must be given together", ErrInvalidPayload)
		}
		return u.requests.ListByDevice(ctx, strings.TrimSpace(f.Brand), strings.TrimSpace(f.Model))
	case f.Recent > 0:
		return u.requests.ListRecent(ctx, f.Recent)
	default:
		return nil, fmt.Errorf("%w: no filter given", ErrInvalidPayload)
	}
}

func (u *RepairRequestUseCase) load(ctx context.Context, id string) (entities.RepairRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RepairRequest{}, fmt.Errorf("%w: id is required", ErrInvalidPayload)
	}
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if req.ID == "" {
		return entities.RepairRequest{}, ErrRepairRequestNotFound
	}
	return req, nil
}

func (u *RepairRequestUseCase) save(ctx context.Context, r entities.RepairRequest) (entities.RepairRequest, error) {
	updated, err := u.requests.Update(ctx, r)
	if errors.Is(err, entities.ErrVersionConflict) {
		return entities.RepairRequest{}, fmt.Errorf("%w: %s", ErrConcurrentUpdate, r.ID)
	}
	return updated, err
}

func requestID(idempotencyKey string) string {
	if idempotencyKey == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(idempotencyNamespace, []byte(idempotencyKey)).String()
}
