package patient

import "errors"

var (
	ErrNoAccounts         = errors.New("no registered patients found")
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateID        = errors.New("duplicate user id")
)
