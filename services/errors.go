package services

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrEmailTaken    = errors.New("email already registered")
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownUser   = errors.New("user_id does not reference an existing user")
)
