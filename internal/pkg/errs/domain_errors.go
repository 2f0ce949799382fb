package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Offer errors
	ErrOfferNotFound = errors.New("offer not found")

	// Payout errors
	ErrPayoutNotFound    = errors.New("payout request not found")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrReviewInProgress  = errors.New("payout is being reviewed by another operator")
	ErrConcurrentReview  = errors.New("payout changed while it was being reviewed")
	ErrInvalidListFilter = errors.New("invalid list filter")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
