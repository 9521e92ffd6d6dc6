// Package errors provides structured, coded errors for navshell.
//
// Every error that crosses a package boundary carries a stable code that
// maps to a category and a short message:
//   - config (E1xx): configuration file and environment problems
//   - routing (E2xx): route table construction
//   - navigation (E3xx): navigate requests from clients
//   - asset (E4xx): stylesheet and script loading
//   - cli (E5xx): command failures
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetailf("%q appears twice under %q", "about", "/").
//	    WithSuggestion("Give each sibling route a distinct path")
//
// Errors compare by code, so errors.Is(err, errors.New("E201")) holds for
// any E201 regardless of detail.
package errors
