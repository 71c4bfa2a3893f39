package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrAlreadyResolved  = errors.New("payment already resolved")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDecision  = errors.New("invalid decision")
	ErrOrphanedPayment  = errors.New("payment without submitter")
)

// OrphanedPaymentError платеж, для которого в хранилище не нашлось пользователя-отправителя.
// Это нарушение целостности данных, а не пустое состояние.
type OrphanedPaymentError struct {
	PaymentID   uuid.UUID
	SubmittedBy uuid.UUID
}

func NewOrphanedPaymentError(paymentID, submittedBy uuid.UUID) error {
	return &OrphanedPaymentError{PaymentID: paymentID, SubmittedBy: submittedBy}
}

func (e *OrphanedPaymentError) Error() string {
	return fmt.Sprintf(
		"cash payment %s references missing user %s",
		e.PaymentID,
		e.SubmittedBy,
	)
}

func (e *OrphanedPaymentError) Unwrap() error {
	return ErrOrphanedPayment
}
