package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptySubject   = errors.New("token subject is required")
	ErrEmptyAirport   = errors.New("airport code is required")
	ErrInvalidAirport = errors.New("invalid airport code")
	ErrInvalidType    = errors.New("flight type must be arrivals or departures")
)
