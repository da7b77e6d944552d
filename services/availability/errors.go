package availability

import (
	"errors"
	"fmt"
)

// InvalidRuleError rejects malformed availability input at creation time so
// the resolver can assume validated data.
type InvalidRuleError struct {
	Code    string
	Message string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRuleError(msg string) error {
	return &InvalidRuleError{
		Code:    "invalidRule",
		Message: msg,
	}
}

// IsInvalidRule reports whether err is an InvalidRuleError.
func IsInvalidRule(err error) bool {
	var ire *InvalidRuleError
	return errors.As(err, &ire)
}
