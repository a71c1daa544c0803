package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSubmitUnavailable indicates Submit was invoked away from the final step.
	ErrSubmitUnavailable = errors.New("submit only available on the final step")

	// Authentication and authorization errors.

	// ErrAuthRequired indicates no session is available.
	// The wizard is inaccessible without a signed-in user.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the session has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrPermissionDenied indicates the session's role lacks the
	// create/update/delete actions required to modify company profiles.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// Submission errors.

	// ErrSelfRelationship indicates a company relationship whose two
	// endpoints would resolve to the same company. Fatal for the submission.
	ErrSelfRelationship = errors.New("relationship endpoints resolve to the same company")

	// ErrMissingCompanyID indicates a child write was attempted before the
	// company identifier was known. Fatal for the submission.
	ErrMissingCompanyID = errors.New("company identifier missing before child write")

	// ErrRateLimited indicates the remote API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
