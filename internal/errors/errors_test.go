package errors_test

import (
	"fmt"
	"testing"

	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsDomainErrorsMatchable(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrQRCodeNotFound, "resolve LL-00000001")
	err = errors.WithStack(err)

	assert.True(t, errors.Is(err, domainerrors.ErrQRCodeNotFound))
	assert.Equal(t, "resolve LL-00000001: "+domainerrors.ErrQRCodeNotFound.Error(), err.Error())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "QR_CODE_NOT_FOUND", appErr.ErrorCode())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "nothing happened"))
	assert.NoError(t, errors.Wrapf(nil, "nothing happened to %s", "LL-00000001"))
	assert.NoError(t, errors.WithStack(nil))
}

func TestWrapRecordsStack(t *testing.T) {
	err := errors.Wrapf(errors.New("disk full"), "save profile %d", 7)

	assert.Equal(t, "save profile 7: disk full", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapRecordsStack")
}
