package domain

import "errors"

var ErrValidation = errors.New("username and password are required")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is the single outcome for both "no such user" and
// "wrong password" so callers cannot enumerate valid usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrSessionNotFound = errors.New("session not found")
