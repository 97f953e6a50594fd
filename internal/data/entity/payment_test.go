package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingPayment(t *testing.T, subtotal float64) *Payment {
	t.Helper()

	showtime := testShowtime(t, 10.0)
	history := NewBookingHistory(showtime.ID)
	booking, err := NewBooking("BOOK-20260831-100000-0001", history.UserID, showtime, showtime.Room.Seats[:1], history)
	require.NoError(t, err)

	payment, err := NewPayment(booking, subtotal)
	require.NoError(t, err)
	booking.Payment = payment
	return payment
}

func TestPaymentProcess(t *testing.T) {
	payment := pendingPayment(t, 20.0)

	require.NoError(t, payment.Process(20.0, MethodCreditCard))

	assert.Equal(t, PaymentStatusComplete, payment.Status)
	assert.Equal(t, 2.0, payment.Fee)
	assert.Equal(t, 1.0, payment.Tax)
	// 20 + 2 flat fee + 5% tax on the pre-fee subtotal
	assert.Equal(t, 23.0, payment.Total)
	assert.Equal(t, MethodCreditCard, payment.Method)
}

func TestPaymentProcessTaxRounding(t *testing.T) {
	payment := pendingPayment(t, 22.5)

	require.NoError(t, payment.Process(22.5, MethodCash))

	assert.Equal(t, 1.13, payment.Tax)
	assert.Equal(t, 25.63, payment.Total)
}

func TestPaymentProcessAmountMismatch(t *testing.T) {
	payment := pendingPayment(t, 20.0)

	err := payment.Process(19.99, MethodCash)
	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.Equal(t, PaymentStatusPending, payment.Status)
	assert.Equal(t, 20.0, payment.Total)
}

func TestPaymentProcessInvalidMethod(t *testing.T) {
	payment := pendingPayment(t, 20.0)

	err := payment.Process(20.0, PaymentMethod("Barter"))
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Equal(t, PaymentStatusPending, payment.Status)
}

func TestPaymentProcessOnlyOnce(t *testing.T) {
	payment := pendingPayment(t, 20.0)
	require.NoError(t, payment.Process(20.0, MethodDebitCard))

	// A second process must not stack fee and tax again.
	err := payment.Process(23.0, MethodDebitCard)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Equal(t, 23.0, payment.Total)
}

func TestPaymentRefundRequiresCancelledBooking(t *testing.T) {
	payment := pendingPayment(t, 20.0)
	require.NoError(t, payment.Process(20.0, MethodCreditCard))

	// Booking still pending, refund is not legal yet.
	err := payment.Refund()
	assert.ErrorIs(t, err, ErrRefundNotAllowed)
	assert.Equal(t, PaymentStatusComplete, payment.Status)

	payment.Booking.Status = BookingStatusCancelled
	require.NoError(t, payment.Refund())
	assert.Equal(t, PaymentStatusCancelled, payment.Status)
}

func TestPaymentRefundRequiresComplete(t *testing.T) {
	payment := pendingPayment(t, 20.0)
	payment.Booking.Status = BookingStatusCancelled

	err := payment.Refund()
	assert.ErrorIs(t, err, ErrRefundNotAllowed)
}

func TestPaymentSetStatus(t *testing.T) {
	payment := pendingPayment(t, 20.0)

	require.NoError(t, payment.SetStatus(PaymentStatusFailed))
	assert.Equal(t, PaymentStatusFailed, payment.Status)

	err := payment.SetStatus(PaymentStatus("REFUNDED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewPaymentValidation(t *testing.T) {
	_, err := NewPayment(nil, 10)
	assert.ErrorIs(t, err, ErrValidation)

	showtime := testShowtime(t, 10.0)
	history := NewBookingHistory(showtime.ID)
	booking, err := NewBooking("BOOK-20260831-100000-0002", history.UserID, showtime, showtime.Room.Seats[:1], history)
	require.NoError(t, err)

	_, err = NewPayment(booking, -1)
	assert.ErrorIs(t, err, ErrValidation)
}
