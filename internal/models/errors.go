package models

import "errors"

// Credential store errors
var (
	ErrUserNotFound       = errors.New("user not found")            // 404 Not Found
	ErrEmailTaken         = errors.New("email already registered")  // 409 Conflict
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
)

// Eligibility gate errors
var (
	ErrIncompleteForm       = errors.New("please fill in all fields")                            // 400
	ErrInvalidBirthDate     = errors.New("birth date cannot be in the future")                   // 400
	ErrUnderage             = errors.New("you must be 21 or older to access this platform")      // 403
	ErrStateNotLegal        = errors.New("cannabis sales are not currently legal in your state") // 403
	ErrSessionNotFound      = errors.New("no active verification session")                       // 401
	ErrVerificationRequired = errors.New("age verification required")                            // 403
)

// Catalog errors
var (
	ErrStrainNotFound  = errors.New("strain not found")                  // 404
	ErrNotListingOwner = errors.New("listing belongs to another seller") // 403
)

// Membership errors
var (
	ErrTierNotFound        = errors.New("membership tier not found")                   // 404
	ErrDowngradeNotAllowed = errors.New("membership downgrades are not supported")     // 400
	ErrSameTier            = errors.New("already subscribed to this tier")             // 400
	ErrPaymentFailed       = errors.New("payment processing failed, please try again") // 402
)

// Subscription errors
var (
	ErrSubscriptionNotFound = errors.New("subscription not found") // 404
)
