// Package usecase implements the business logic for the registration feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by mail address.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with a mail address that already exists.
	// It can originate from the pre-check as well as from the unique index at insert time.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
