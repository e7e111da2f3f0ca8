// Package domain defines the core business entities of the calendar
// service: civil dates, their Hebrew-calendar readings, user-authored
// calendar events, and user accounts, together with their validation
// rules and errors.
package domain
