// Package services contains the page controllers of the careercli client.
//
// Each service validates input before anything is sent, calls the remote
// API through a narrow interface, and turns failures into values the REPL
// can show. Validation failures are FieldErrors, which match
// common.ErrorValidation with errors.Is.
package services
