// Package api contains the HTTP handlers of the calendar service and
// the mapping from internal errors to safe HTTP responses.
package api
