// Package validation checks declared constraints on input before it reaches a
// controller and collects the failures per field.
package validation

// FieldError is a single failed constraint.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ModelState accumulates field errors for one request. The zero value is valid
// and reports no errors.
type ModelState struct {
	errs []FieldError
}

// AddModelError records a failure for field. An empty field marks a
// model-level error.
func (ms *ModelState) AddModelError(field, description string) {
	ms.errs = append(ms.errs, FieldError{Field: field, Description: description})
}

func (ms *ModelState) IsValid() bool {
	return ms == nil || len(ms.errs) == 0
}

// Errors returns a copy of the recorded failures in insertion order.
func (ms *ModelState) Errors() []FieldError {
	if ms == nil {
		return nil
	}
	out := make([]FieldError, len(ms.errs))
	copy(out, ms.errs)
	return out
}

// For returns the descriptions recorded for field.
func (ms *ModelState) For(field string) []string {
	if ms == nil {
		return nil
	}
	var out []string
	for _, e := range ms.errs {
		if e.Field == field {
			out = append(out, e.Description)
		}
	}
	return out
}
