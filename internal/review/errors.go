package review

import "errors"

var (
	ErrNotAdmin             = errors.New("review is available to admins only")
	ErrBusy                 = errors.New("payment is being processed")
	ErrConfirmationNotFound = errors.New("confirmation not found")
	ErrConfirmationExpired  = errors.New("confirmation expired")
	ErrNotConfirmed         = errors.New("action was not confirmed")
)
