package validation

import "strings"

// FieldError describes one violated rule for one logical form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the ordered result of a form-level validation. It implements
// error so services can hand it back through an ordinary error return;
// callers recover it with errors.As.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the error recorded for name, if any.
func (e Errors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Err returns e as an error, or nil when there is nothing to report.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errors) add(fe *FieldError) {
	if fe != nil {
		*e = append(*e, *fe)
	}
}
