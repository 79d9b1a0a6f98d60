// Package errors defines the coded errors shared by the kitchen engine, the
// loader and the HTTP server.
//
// Errors compare by code with errors.Is, so a package can export a sentinel
// and return richer errors that still match it:
//
//	var ErrUnknownCategory = errors.New(errors.ErrCodeUnknownCategory, "unknown category")
//
//	err := ErrUnknownCategory.With("category", "grain")
//	stderrors.Is(err, ErrUnknownCategory) // true
//
// The server maps codes to HTTP statuses; CodeOf extracts the code from any
// error chain and falls back to INTERNAL. Recoverable separates caller
// mistakes from a catalog desync, after which the engine cannot be trusted.
package errors
