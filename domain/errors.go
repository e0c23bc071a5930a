package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAmountFormat = errors.New("invalid amount format")
	ErrInvalidMessage      = errors.New("invalid message format")

	// listing errors
	ErrDuplicateListing          = errors.New("listing already exists")
	ErrListingNotFound           = errors.New("listing not found")
	ErrListingLocked             = errors.New("listing locked by in-flight settlement")
	ErrNotOwner                  = errors.New("caller is not the listing owner")
	ErrConditionNotFound         = errors.New("sale condition not found")
	ErrInsufficientStorageCredit = errors.New("insufficient storage credit")
	ErrDepositBelowMinimum       = errors.New("deposit below minimum storage balance")
	ErrWithdrawConflict          = errors.New("balance changed during withdraw")

	// bid errors
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrBidTooLow           = errors.New("bid does not exceed current highest bid")
	ErrNoBids              = errors.New("no bids for this currency")

	// payout errors
	ErrRoyaltyCapExceeded = errors.New("royalty total exceeds cap")
	ErrTooManyRecipients  = errors.New("too many payout recipients")

	// settlement errors
	ErrPriceMismatch = errors.New("amount does not match asking price")
	ErrStaleCallback = errors.New("settlement callback does not match in-flight attempt")

	ErrNotAdmin = errors.New("admin's method")
)
