package infra

import (
	"errors"
	"log/slog"

	"rentaldesk/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		slogger.Debug("Repository miss: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	var marked error = RepositoryError{Kind: kind, msg: msg, err: err}
	switch kind {
	case KindNotFound:
		marked = errs.Mark(marked, errs.ErrNotFound)
	case KindDBFailure:
		marked = errs.Mark(marked, errs.ErrDatabaseOperationFailed)
	case KindStoreFailure:
		marked = errs.Mark(marked, errs.ErrSessionStoreFailed)
	}
	return marked
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
	KindStoreFailure RepositoryErrorKind = "STORE_FAILURE"
	KindCorrupted    RepositoryErrorKind = "CORRUPTED"
)
