// Package usecase implements the business logic of the user feature.
package usecase

import "errors"

// Domain errors for user operations. Handlers translate these to the
// response envelope; anything else is treated as a server error.
var (
	// ErrUserNotFound indicates that no user exists with the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates a duplicate email or CPF.
	ErrUserAlreadyExists = errors.New("user already exists with this email or CPF")

	// ErrEmptyUpdate indicates an update request without any field.
	ErrEmptyUpdate = errors.New("at least one field must be provided for update")

	// ErrImageTooLarge indicates a document image above the upload limit.
	ErrImageTooLarge = errors.New("document image exceeds the maximum allowed size")
)
