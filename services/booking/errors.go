package booking

import (
	"errors"
	"fmt"
	"strings"
)

// IncompleteBookingError is returned when a draft is submitted before every
// required step has been completed. Recoverable: the caller fills in the
// named fields and retries.
type IncompleteBookingError struct {
	Code          string
	MissingFields []string
}

func (e *IncompleteBookingError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Code, strings.Join(e.MissingFields, ", "))
}

func NewIncompleteBookingError(missing []string) error {
	return &IncompleteBookingError{
		Code:          "incompleteBooking",
		MissingFields: missing,
	}
}

// IsIncomplete reports whether err is an IncompleteBookingError.
func IsIncomplete(err error) bool {
	var ibe *IncompleteBookingError
	return errors.As(err, &ibe)
}

// ErrSessionNotFound is returned when a wizard session id is unknown or has
// expired from the cache.
var ErrSessionNotFound = errors.New("booking session not found or expired")
