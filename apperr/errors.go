package apperr

import "errors"

var (

	// credential store errors
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// profile store errors
	ErrProfileNotFound = errors.New("profile not found")

	// token errors
	ErrInvalidToken = errors.New("invalid token")

	// AI upstream errors. ErrMalformedUpstream means the service answered
	// but the payload could not be turned into a typed result.
	ErrUpstream          = errors.New("upstream AI service error")
	ErrMalformedUpstream = errors.New("malformed upstream response")
)
