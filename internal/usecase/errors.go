package usecase

import "errors"

var (
	ErrInvalidPayload         = errors.New("invalid payload")
	ErrInvalidState           = errors.New("operation not allowed in current state")
	ErrRepairRequestNotFound  = errors.New("repair request not found")
	ErrConcurrentUpdate       = errors.New("repair request was modified concurrently")
	ErrAppointmentUnavailable = errors.New("appointment unavailable")
)
