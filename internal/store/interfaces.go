package store

import (
	"context"

	"github.com/MKhiriev/go-flight-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
//
// Implementations must enforce username uniqueness and report a duplicate
// with [ErrLoginAlreadyExists], including when two concurrent creations race
// for the same username. A lookup that matches nothing reports
// [ErrNoUserWasFound].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// IDGenerator produces unique identifiers for new user records.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator maps driver-specific errors to [ErrorClassification]
// values so repositories can react to them without importing the driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
