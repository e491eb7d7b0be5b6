package entities

import (
	"errors"
	"strings"
)

// Store contract errors. Adapters return them (possibly wrapped) and callers
// match them with errors.Is.
var (
	ErrSlotNotFound         = errors.New("appointment slot not found")
	ErrSlotFull             = errors.New("appointment slot is full or unavailable")
	ErrBookingNotFound      = errors.New("booking not found on appointment slot")
	ErrUnknownService       = errors.New("unknown or inactive service")
	ErrRepairRequestExists  = errors.New("repair request already exists")
	ErrVersionConflict      = errors.New("repair request was modified concurrently")
	ErrInvalidTransition    = errors.New("invalid repair status transition")
	ErrInvalidSlot          = errors.New("invalid appointment slot")
	ErrInvalidCatalogEntry  = errors.New("invalid service catalog entry")
	ErrPaymentAlreadyExists = errors.New("payment already exists")
)

// UnknownServiceError lists every requested service name that has no active
// catalog entry.
type UnknownServiceError struct {
	Names []string
}

func (e *UnknownServiceError) Error() string {
	return ErrUnknownService.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *UnknownServiceError) Is(target error) bool {
	return target == ErrUnknownService
}
