package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrStorageUnavailable is returned after bounded retries of a transient
	// persistence failure are exhausted. The caller receives this error as a
	// clean "service unavailable" signal; no fabricated success payload is
	// ever substituted for a failed storage operation.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
