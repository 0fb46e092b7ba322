package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers and the
// handler's error mapping. Matched with errors.Is; the wire error codes
// derive from these one-to-one.
var (
	// Validation errors
	ErrDatesInvalid   = errors.New("invalid reservation dates")
	ErrRemarksInvalid = errors.New("invalid remarks")

	// Conflict errors
	ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

	// Not-found errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Financial gate
	ErrClientUnpaidFees = errors.New("client has unpaid fees")

	// Lifecycle guard errors
	ErrConfirmImpossible      = errors.New("confirmation not allowed in current status")
	ErrCheckInImpossible      = errors.New("check-in not allowed in current status")
	ErrCheckOutImpossible     = errors.New("check-out not allowed in current status")
	ErrCancelImpossible       = errors.New("cancellation not allowed in current status")
	ErrModificationImpossible = errors.New("modification not allowed in current status")

	// Concurrency
	ErrConcurrentModification = errors.New("reservation was modified concurrently")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
