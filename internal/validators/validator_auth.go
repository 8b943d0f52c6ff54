package validators

import (
	"context"

	"github.com/MKhiriev/go-flight-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login of credentials or token claims.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of credentials.
	FieldPassword = "password"

	// FieldSubject targets the user ID carried in token claims.
	FieldSubject = "subject"
)

// AuthValidator validates caller credentials and decoded token claims.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate accepts [models.Credentials] and [models.Claims] (by value or
// pointer). Without fields, every field of the value is checked.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Claims:
		return v.validateClaims(ctx, value, fields...)
	case *models.Claims:
		return v.validateClaims(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateClaims(_ context.Context, claims models.Claims, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubject, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldSubject:
			if claims.UserID() == "" {
				return ErrEmptySubject
			}
		case FieldUsername:
			if claims.Username == "" {
				return ErrEmptyUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
