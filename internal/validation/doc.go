// Package validation checks user-entered form values before anything is sent
// to the API.
//
// Every single-field validator returns nil when the value is acceptable or a
// *FieldError naming the field and the first rule it violates. Form-level
// validators run their field checks in a fixed order and collect every
// failure into Errors; they never stop at the first one.
//
// All functions are pure: no I/O, no shared state, same input same output.
package validation
