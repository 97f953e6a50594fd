package entity

import "errors"

// Domain errors. Services wrap these with context via fmt.Errorf("...: %w", err)
// and handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrDuplicate            = errors.New("already exists")
	ErrNoSeatsAvailable     = errors.New("no seats available")
	ErrSeatUnavailable      = errors.New("seat unavailable")
	ErrAlreadyProcessed     = errors.New("payment already processed")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAmountMismatch       = errors.New("payment amount mismatch")
	ErrRefundNotAllowed     = errors.New("refund not allowed")
	ErrCannotConfirm        = errors.New("cannot confirm booking")
	ErrCannotCancel         = errors.New("cannot cancel booking")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrUnauthorized         = errors.New("unauthorized")
)
