package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidTokenPayload = errors.New("invalid token payload")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidFlightQuery    = errors.New("invalid flight query")
	ErrUpstreamNotConfigured = errors.New("upstream flight provider is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
