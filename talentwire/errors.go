package talentwire

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRestrictedHeader indicates an attempt to set a transport-managed header
// through the generic header map.
var ErrRestrictedHeader = errors.New("talentwire: restricted header")

// APIError is returned when the server reported a failure, sent an
// unparseable body, or never answered at all. Transport-level failures carry
// a sentinel status code (408 for timeouts, 500 otherwise) and no
// transaction ID, since no server response existed.
type APIError struct {
	// StatusCode is the HTTP status, or the sentinel for transport faults.
	StatusCode int
	// Status is the HTTP status line, or the transport failure text.
	Status string
	// Code is the machine-readable error code from the server, if any.
	Code string
	// Message is the human-readable error description.
	Message string
	// TransactionID identifies the call on the server side, if it got there.
	TransactionID string
	// RawResponse holds the undecoded response body for diagnostics.
	RawResponse string
	// RequestBody holds the outbound body when the client was built with
	// WithDebug(true). Capturing it buffers the full serialized request for
	// every call, so it is off by default.
	RequestBody string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("talentwire API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("talentwire API error (status %d): %s", e.StatusCode, e.Message)
}

// IsTimeout reports whether the server never answered in time.
func (e *APIError) IsTimeout() bool {
	return e.StatusCode == http.StatusRequestTimeout
}

// IsUnauthorized reports whether the credentials were rejected.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden ||
		e.Code == "AuthenticationError"
}

// IsNotFound reports whether the addressed resource does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "DataNotFound"
}

// IsInsufficientCredits reports whether the account ran out of credits.
func (e *APIError) IsInsufficientCredits() bool {
	return e.Code == "InsufficientCredits"
}

// GeocodeError is returned when the outer call succeeded but its embedded
// geocoding stage failed. The otherwise-successful parsed document stays
// retrievable from the error.
type GeocodeError struct {
	Code          string
	Message       string
	TransactionID string
	// Resume or Job holds the successfully parsed document, depending on
	// which operation carried the geocoding request.
	Resume *ParsedResume
	Job    *ParsedJob
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocoding failed (code %s): %s", e.Code, e.Message)
}

// IndexError is returned when the outer call succeeded but its embedded
// indexing stage failed. The parsed document stays retrievable.
type IndexError struct {
	Code          string
	Message       string
	TransactionID string
	Resume        *ParsedResume
	Job           *ParsedJob
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("indexing failed (code %s): %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *APIError if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// AsGeocodeError unwraps err into a *GeocodeError if there is one.
func AsGeocodeError(err error) (*GeocodeError, bool) {
	var geoErr *GeocodeError
	ok := errors.As(err, &geoErr)
	return geoErr, ok
}

// AsIndexError unwraps err into an *IndexError if there is one.
func AsIndexError(err error) (*IndexError, bool) {
	var idxErr *IndexError
	ok := errors.As(err, &idxErr)
	return idxErr, ok
}
