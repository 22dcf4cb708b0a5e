package jsonplaceholder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
)

// TransportErrorKind identifies why a call to the users API failed.
type TransportErrorKind int

const (
	// TransportErrorKind_InvalidURL means the request could not be built.
	TransportErrorKind_InvalidURL TransportErrorKind = iota
	// TransportErrorKind_InvalidResponse means the response carried no usable status code.
	TransportErrorKind_InvalidResponse
	// TransportErrorKind_ServerError means the status code was outside 200-299.
	TransportErrorKind_ServerError
	// TransportErrorKind_Decoding means the body did not match the expected shape.
	TransportErrorKind_Decoding
	// TransportErrorKind_Unknown covers connectivity and any other transport failure.
	TransportErrorKind_Unknown
)

// String returns the name of the kind.
func (k TransportErrorKind) String() string {
	switch k {
	case TransportErrorKind_InvalidURL:
		return "invalid_url"
	case TransportErrorKind_InvalidResponse:
		return "invalid_response"
	case TransportErrorKind_ServerError:
		return "server_error"
	case TransportErrorKind_Decoding:
		return "decoding_error"
	default:
		return "unknown"
	}
}

// TransportError is the failure produced by APIClient.
// It never leaves this package: UserRepository translates it with toDomainError.
type TransportError struct {
	Kind       TransportErrorKind
	StatusCode int
	Message    string
	cause      error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	switch e.Kind {
	case TransportErrorKind_ServerError:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	case TransportErrorKind_InvalidResponse:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *TransportError) Unwrap() error {
	return e.cause
}

func newInvalidURLErr(cause error) *TransportError {
	return &TransportError{Kind: TransportErrorKind_InvalidURL, Message: cause.Error(), cause: cause}
}

func newInvalidResponseErr() *TransportError {
	return &TransportError{Kind: TransportErrorKind_InvalidResponse}
}

func newServerErr(statusCode int) *TransportError {
	return &TransportError{Kind: TransportErrorKind_ServerError, StatusCode: statusCode}
}

func newDecodingErr(cause error) *TransportError {
	return &TransportError{Kind: TransportErrorKind_Decoding, Message: cause.Error(), cause: cause}
}

func newUnknownErr(cause error) *TransportError {
	return &TransportError{Kind: TransportErrorKind_Unknown, Message: cause.Error(), cause: cause}
}

// toDomainError translates any error raised below the repository into the domain error set.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}

	var te *TransportError
	if !errors.As(err, &te) {
		return domain.NewUnknownErr(err.Error())
	}

	switch te.Kind {
	case TransportErrorKind_InvalidURL, TransportErrorKind_InvalidResponse:
		return domain.NewNetworkErr("Invalid network request")
	case TransportErrorKind_ServerError:
		if te.StatusCode == http.StatusNotFound {
			return domain.NewUserNotFoundErr()
		}
		return domain.NewNetworkErr(fmt.Sprintf("Server error: %d", te.StatusCode))
	case TransportErrorKind_Decoding:
		return domain.NewDecodingErr(te.Message)
	default:
		return domain.NewUnknownErr(te.Message)
	}
}
