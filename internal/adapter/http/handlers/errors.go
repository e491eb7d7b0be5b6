package handlers

import (
	"errors"
	"net/http"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"
	"repair_intake/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// abort writes the error body and records the cause on the context so the
// request logger can report it.
func abort(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapRepairRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayload):
		return errInvalidBody.WithMessage(err.Error())
	case errors.Is(err, entities.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRepairRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Repair request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentUnavailable):
		return pkg.NewDomainErrorSimple("APPOINTMENT_UNAVAILABLE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Repair request was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayload):
		return errInvalidBody.WithMessage(err.Error())
	case errors.Is(err, entities.ErrSlotNotFound):
		return pkg.NewDomainErrorSimple("SLOT_NOT_FOUND", "Appointment slot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapRepairPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRequestID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidBody
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRepairRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Repair request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotCompleted):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_COMPLETED", "Repair request not completed", http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentAlreadyExists):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_EXISTS", "Repair request already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrRepairPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
