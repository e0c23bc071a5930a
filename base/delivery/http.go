package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusForError(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func statusForError(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrConditionNotFound),
		errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateListing),
		errors.Is(err, domain.ErrWithdrawConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrListingLocked):
		return http.StatusLocked
	case errors.Is(err, domain.ErrStaleCallback):
		return http.StatusGone
	case errors.Is(err, domain.ErrNotOwner), errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAmountFormat),
		errors.Is(err, domain.ErrInvalidMessage),
		errors.Is(err, domain.ErrUnsupportedCurrency),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrNoBids),
		errors.Is(err, domain.ErrPriceMismatch),
		errors.Is(err, domain.ErrDepositBelowMinimum),
		errors.Is(err, domain.ErrInsufficientStorageCredit),
		errors.Is(err, domain.ErrRoyaltyCapExceeded),
		errors.Is(err, domain.ErrTooManyRecipients):
		return http.StatusBadRequest
	}
	return fallback
}
