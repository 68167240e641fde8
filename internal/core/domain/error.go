package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidQuantity       = errors.New("line quantity must be positive")
	ErrInsufficientStock     = errors.New("option stock is not enough")
	ErrInsufficientCredit    = errors.New("credit balance is not enough")
	ErrExcessiveCreditUse    = errors.New("used credit exceeds order total")
	ErrPaymentRejected       = errors.New("payment verification rejected")
	ErrPaymentDuplicated     = errors.New("payment reference already recorded")
	ErrPaymentCancelRejected = errors.New("payment cancellation rejected")
	ErrOrderAlreadyCanceled  = errors.New("order is already canceled")
	ErrDonationQuotaExceeded = errors.New("donation receive quota exceeded for current level")
	ErrDonationNotAvailable  = errors.New("donation product is not available")
	ErrReviewAlreadyRewarded = errors.New("review already submitted for this order item")

	// * Invariant violations. These signal a broken atomicity guarantee
	// and must never be mapped to a recoverable response.
	ErrSettlementMismatch = errors.New("order settlement does not add up")
	ErrNegativeBalance    = errors.New("credit balance went negative")
	ErrNegativeStock      = errors.New("option stock went negative")
)
