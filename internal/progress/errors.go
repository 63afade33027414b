package progress

import "fmt"

// ValidationError rejects bad input synchronously; the state is left
// untouched whenever one is returned.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}
