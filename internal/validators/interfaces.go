// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input before it reaches storage or the
// upstream flight provider.
//
// [AuthValidator] covers register/login credentials and decoded token
// claims. [FlightQueryValidator] covers the airport code and direction of a
// flight board query. Failures are returned as the sentinel errors of this
// package so the HTTP layer can pick a precise message.
package validators

import "context"

// Validator checks one value. Passing field names restricts the check to
// those fields; with none, every field the validator knows is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
