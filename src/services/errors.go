package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive indicates the user exists but is deactivated
	ErrUserInactive = errors.New("user is not active")

	// ErrInvalidCredentials indicates the password did not match
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrPasswordCheck indicates the stored hash could not be compared
	ErrPasswordCheck = errors.New("password check error")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrPropertyNotFound indicates the listing does not exist
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNoFields indicates a partial update carried no recognized fields
	ErrNoFields = errors.New("no fields to update")

	// ErrNotConfigured indicates an outbound channel is missing credentials
	ErrNotConfigured = errors.New("channel not configured")
)
