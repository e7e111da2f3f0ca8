package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/hebcal"
	"github.com/luachlab/luach-api/internal/service/auth"
	"github.com/luachlab/luach-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "wrong token type", err: auth.ErrWrongTokenType, want: http.StatusUnauthorized},
		{name: "generic not found", err: store.ErrNotFound, want: http.StatusNotFound},
		{name: "event not found", err: store.ErrEventNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "duplicate", err: store.ErrDuplicate, want: http.StatusConflict},
		{name: "email exists", err: store.ErrEmailExists, want: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "invalid civil date", err: domain.ErrInvalidCivilDate, want: http.StatusBadRequest},
		{name: "invalid event time", err: domain.ErrEventTimeInvalid, want: http.StatusBadRequest},
		{name: "empty event title", err: domain.ErrEventTitleEmpty, want: http.StatusBadRequest},
		{name: "calendar unsupported", err: hebcal.ErrCalendarUnsupported, want: http.StatusServiceUnavailable},
		{name: "boundary scan defect", err: hebcal.ErrBoundaryScan, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped errors unwrap",
			err:  fmt.Errorf("context: %w", store.ErrEventNotFound),
			want: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Event not found", GetSafeErrorMessage(store.ErrEventNotFound))
	assert.Equal(t, "Invalid time", GetSafeErrorMessage(domain.ErrEventTimeInvalid))
	assert.Equal(t, "Token expired", GetSafeErrorMessage(auth.ErrExpiredToken))

	// Internal details never leak to clients.
	internal := errors.New("pq: connection refused on 10.0.0.3")
	msg := GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.3")
}
