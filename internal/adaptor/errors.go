package adaptor

import (
	"errors"
	"net/http"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps domain sentinels onto HTTP statuses. Anything not
// recognized is a 500 and the raw error stays in the logs, not the body.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrInvalidPaymentMethod),
		errors.Is(err, entity.ErrAmountMismatch),
		errors.Is(err, entity.ErrInvalidStatus):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrDuplicate),
		errors.Is(err, entity.ErrSeatUnavailable),
		errors.Is(err, entity.ErrNoSeatsAvailable),
		errors.Is(err, entity.ErrAlreadyProcessed),
		errors.Is(err, entity.ErrCannotConfirm),
		errors.Is(err, entity.ErrCannotCancel),
		errors.Is(err, entity.ErrRefundNotAllowed):
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrUnauthorized):
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Unhandled service error", zap.String("operation", op), zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
