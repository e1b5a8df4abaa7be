// Package errs defines the error types returned to API clients and the
// domain errors raised by the service layer.
//
// HTTPError is the single response shape for failures; domain errors such
// as DuplicateResourceError are converted into it by the global error handler.
package errs
