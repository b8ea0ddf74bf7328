//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"rentaldesk/internal/infra"
	"rentaldesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := errors.New("connection refused")

	err := infra.WrapRepoErr(logger, infra.KindStoreFailure, "failed to save draft", cause)

	assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrSessionStoreFailed))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save draft")

	notFound := infra.WrapRepoErr(logger, infra.KindNotFound, "draft not found", nil)
	assert.True(t, errs.Is(notFound, errs.ErrNotFound))
	assert.Equal(t, "NOT_FOUND: draft not found", notFound.Error())
}
