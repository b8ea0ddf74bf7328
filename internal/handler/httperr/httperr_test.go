//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

type upstreamErr struct {
	status int
	msg    string
}

func (e *upstreamErr) Error() string   { return e.msg }
func (e *upstreamErr) StatusCode() int { return e.status }

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "validation keeps the root message",
			err:    errs.Wrap(errs.Validation(errors.New("select a date first")), "submit draft"),
			status: http.StatusUnprocessableEntity,
			msg:    "select a date first",
		},
		{
			name:   "confirmation",
			err:    errs.Mark(errs.New("Cancel this reservation?"), errs.ErrConfirmationRequired),
			status: http.StatusPreconditionRequired,
			msg:    "Cancel this reservation?",
		},
		{
			name:   "unauthenticated",
			err:    errs.Mark(errors.New("token expired"), errs.ErrUnauthenticated),
			status: http.StatusUnauthorized,
			msg:    "token expired",
		},
		{
			name:   "authorization",
			err:    errs.Mark(errors.New("only staff can do this"), errs.ErrAuthorization),
			status: http.StatusForbidden,
			msg:    "only staff can do this",
		},
		{
			name:   "not found",
			err:    errs.Mark(errors.New("draft not found"), errs.ErrNotFound),
			status: http.StatusNotFound,
			msg:    "draft not found",
		},
		{
			name:   "backend client error passes through",
			err:    errs.Mark(&upstreamErr{status: http.StatusConflict, msg: "Not enough stock"}, errs.ErrTransport),
			status: http.StatusConflict,
			msg:    "Not enough stock",
		},
		{
			name:   "backend server error is a bad gateway",
			err:    errs.Mark(&upstreamErr{status: http.StatusServiceUnavailable, msg: "down"}, errs.ErrTransport),
			status: http.StatusBadGateway,
			msg:    "down",
		},
		{
			name:   "transport without detail",
			err:    errs.Mark(errors.New("dial tcp: refused"), errs.ErrTransport),
			status: http.StatusBadGateway,
			msg:    "Booking service unavailable",
		},
		{
			name:   "anything else hides its message",
			err:    errors.New("pool exhausted"),
			status: http.StatusInternalServerError,
			msg:    "Internal server error",
		},
		{
			name:   "nil",
			err:    nil,
			status: http.StatusInternalServerError,
			msg:    "Internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := httperr.Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestClassify_ConfirmationDetail(t *testing.T) {
	_, _, detail := httperr.Classify(errs.Mark(errs.New("Confirm payment?"), errs.ErrConfirmationRequired))

	assert.Equal(t, httperr.ConfirmationDetail{Prompt: "Confirm payment?"}, detail)
}
