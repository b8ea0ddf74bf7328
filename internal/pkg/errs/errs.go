package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err carries target in its chain or as a mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Validation marks err as a local rule violation, keeping its message.
func Validation(err error) error {
	return Mark(err, ErrValidation)
}

// UserMessage returns the message of the root cause, without the context
// prefixes added by Wrap.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}

type upstream interface {
	error
	StatusCode() int
}

// UpstreamMessage returns the text of the upstream failure carried by err,
// if any.
func UpstreamMessage(err error) (string, bool) {
	var carrier upstream
	if cr.As(err, &carrier) {
		return carrier.Error(), true
	}
	return "", false
}

// StatusOf returns the HTTP status an upstream failure carried, if any.
func StatusOf(err error) (int, bool) {
	var carrier interface{ StatusCode() int }
	if cr.As(err, &carrier) {
		if status := carrier.StatusCode(); status > 0 {
			return status, true
		}
	}
	return 0, false
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
