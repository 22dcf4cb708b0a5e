package domain

import (
	"errors"
	"fmt"
)

// domainErr is the base of the closed set of errors the directory exposes
// to use cases and presentation.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// Message returns the detail the error was created with.
func (e domainErr) Message() string {
	return e.message
}

// NetworkErr represents a failure to talk to the directory source.
type NetworkErr struct {
	domainErr
}

// NewNetworkErr creates a new NetworkErr with the given message.
func NewNetworkErr(message string) *NetworkErr {
	return &NetworkErr{
		domainErr: domainErr{message: message},
	}
}

// Error returns a human-readable description of the network failure.
func (e NetworkErr) Error() string {
	return fmt.Sprintf("Network error: %s", e.message)
}

// DecodingErr represents a response that could not be turned into users.
type DecodingErr struct {
	domainErr
}

// NewDecodingErr creates a new DecodingErr with the given message.
func NewDecodingErr(message string) *DecodingErr {
	return &DecodingErr{
		domainErr: domainErr{message: message},
	}
}

// Error returns a human-readable description of the decoding failure.
func (e DecodingErr) Error() string {
	return fmt.Sprintf("Failed to decode data: %s", e.message)
}

// UserNotFoundErr represents an error when the requested user does not exist.
type UserNotFoundErr struct {
	domainErr
}

// NewUserNotFoundErr creates a new UserNotFoundErr.
func NewUserNotFoundErr() *UserNotFoundErr {
	return &UserNotFoundErr{
		domainErr: domainErr{message: "User not found"},
	}
}

// UnknownErr represents any failure that does not fit the other kinds.
type UnknownErr struct {
	domainErr
}

// NewUnknownErr creates a new UnknownErr with the given message.
func NewUnknownErr(message string) *UnknownErr {
	return &UnknownErr{
		domainErr: domainErr{message: message},
	}
}

// Error returns a human-readable description of the unexpected failure.
func (e UnknownErr) Error() string {
	return fmt.Sprintf("Unexpected error: %s", e.message)
}

// Error kinds reported by ErrorKind.
const (
	ErrorKind_Network      = "network"
	ErrorKind_Decoding     = "decoding"
	ErrorKind_UserNotFound = "user_not_found"
	ErrorKind_Unknown      = "unknown"
)

// ErrorKind names the domain error variant of err.
// Errors outside the domain set are reported as ErrorKind_Unknown, nil as "".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	var (
		networkErr  *NetworkErr
		decodingErr *DecodingErr
		notFoundErr *UserNotFoundErr
	)
	switch {
	case errors.As(err, &networkErr):
		return ErrorKind_Network
	case errors.As(err, &decodingErr):
		return ErrorKind_Decoding
	case errors.As(err, &notFoundErr):
		return ErrorKind_UserNotFound
	default:
		return ErrorKind_Unknown
	}
}
