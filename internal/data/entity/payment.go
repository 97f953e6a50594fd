package entity

import (
	"fmt"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusComplete  PaymentStatus = "COMPLETE"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusComplete, PaymentStatusCancelled, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "Credit Card"
	MethodDebitCard  PaymentMethod = "Debit Card"
	MethodCash       PaymentMethod = "Cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodCash:
		return true
	}
	return false
}

// BookingFee is the flat surcharge applied once per payment, TaxRate the
// fraction of the pre-fee total charged as tax.
const (
	BookingFee = 2.0
	TaxRate    = 0.05
)

// Payment tracks monetary state for one booking. Total holds the subtotal
// until Process runs, then the final charged amount.
type Payment struct {
	Base
	Booking *Booking
	Total   float64
	Fee     float64
	Tax     float64
	Method  PaymentMethod
	Status  PaymentStatus
}

func NewPayment(booking *Booking, subtotal float64) (*Payment, error) {
	if booking == nil {
		return nil, fmt.Errorf("%w: payment requires a booking", ErrValidation)
	}
	if subtotal < 0 {
		return nil, fmt.Errorf("%w: payment total must be non-negative", ErrValidation)
	}
	return &Payment{
		Base:    NewBase(),
		Booking: booking,
		Total:   subtotal,
		Status:  PaymentStatusPending,
	}, nil
}

// Process charges the payment. The amount must exactly match the current
// total (no partial payments) and the method must be one of the closed set.
// On success the booking fee and 5% tax are applied exactly once and the
// status moves PENDING -> COMPLETE.
func (p *Payment) Process(amount float64, method PaymentMethod) error {
	if p.Status != PaymentStatusPending {
		return fmt.Errorf("%w: payment is %s", ErrAlreadyProcessed, p.Status)
	}
	if !method.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	if amount != p.Total {
		return fmt.Errorf("%w: paid %.2f, expected %.2f", ErrAmountMismatch, amount, p.Total)
	}

	p.Fee = BookingFee
	p.Tax = round2(p.Total * TaxRate)
	p.Total = round2(p.Total + p.Fee + p.Tax)
	p.Method = method
	p.Status = PaymentStatusComplete
	p.UpdatedAt = nowFunc()
	return nil
}

// Refund is legal only from COMPLETE and only once the linked booking is
// CANCELLED. On success the status moves to CANCELLED.
func (p *Payment) Refund() error {
	if p.Status != PaymentStatusComplete {
		return fmt.Errorf("%w: payment is %s", ErrRefundNotAllowed, p.Status)
	}
	if p.Booking == nil || p.Booking.Status != BookingStatusCancelled {
		return fmt.Errorf("%w: booking is not cancelled", ErrRefundNotAllowed)
	}
	p.Status = PaymentStatusCancelled
	p.UpdatedAt = nowFunc()
	return nil
}

// SetStatus is the administrative override outside the normal flow. It only
// accepts the four defined statuses.
func (p *Payment) SetStatus(status PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q is not a payment status", ErrInvalidStatus, status)
	}
	p.Status = status
	p.UpdatedAt = nowFunc()
	return nil
}
