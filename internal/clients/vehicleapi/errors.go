package vehicleapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnavailable matches every *UnavailableError via errors.Is.
var ErrUnavailable = errors.New("vehicle service unavailable")

// Reason classifies why a lookup could not be answered.
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonTimeout   Reason = "timeout"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
)

// UnavailableError reports that the vehicle service could not answer a lookup.
// It is distinct from "not found", which Fetch reports as a plain false.
type UnavailableError struct {
	Registration string
	StatusCode   int
	Reason       Reason
	Err          error
}

func (e *UnavailableError) Error() string {
	if e == nil {
		return ErrUnavailable.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: registration=%s reason=%s", ErrUnavailable.Error(), e.Registration, e.Reason)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " status=%d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func unavailable(reg string, reason Reason, status int, err error) *UnavailableError {
	return &UnavailableError{Registration: reg, StatusCode: status, Reason: reason, Err: err}
}

// ReasonOf extracts the reason from err, or "" when err is not an UnavailableError.
func ReasonOf(err error) Reason {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue.Reason
	}
	return ""
}
