package rentalerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
)

// business logic errors
var (
	ErrInvalidPrice           = errors.New("daily price must be positive")
	ErrInvalidDeposit         = errors.New("deposit must be positive")
	ErrNotAvailable           = errors.New("item is not available")
	ErrOwnerCannotRent        = errors.New("owner cannot rent own item")
	ErrInsufficientPayment    = errors.New("payment below deposit plus one day")
	ErrNotCurrentlyRented     = errors.New("item is not currently rented")
	ErrNotRenter              = errors.New("caller is not the current renter")
	ErrRentalPeriodNotExpired = errors.New("rental period has not expired")
	ErrReentrantCall          = errors.New("reentrant ledger call rejected")
	ErrMissingCaller          = errors.New("missing caller identity")
)

// payment/escrow errors
var (
	ErrTransferFailed = errors.New("value transfer failed")
)
