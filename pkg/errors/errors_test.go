package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	cases := []struct {
		code   int
		status int
	}{
		{ErrCodeInvalidParams, http.StatusBadRequest},
		{ErrCodeSoldCopies, http.StatusBadRequest},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeBookNotFound, http.StatusNotFound},
		{ErrCodeShelfDuplicate, http.StatusConflict},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{12345, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.status, New(tc.code, "x").HTTPStatus())
		})
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("保留AppError", func(t *testing.T) {
		src := New(ErrCodeUserNotFound, "User doesn't exist")
		wrapped := fmt.Errorf("lookup: %w", src)

		got := GetAppError(wrapped)
		assert.Same(t, src, got)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := GetAppError(cause)

		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.ErrorIs(t, got, cause)
	})
}

func TestWithCause(t *testing.T) {
	cause := errors.New("duplicate key")
	got := WithCause(ErrInvalidParams, cause)

	assert.Equal(t, ErrCodeInvalidParams, got.Code)
	assert.ErrorIs(t, got, cause)
	assert.Nil(t, ErrInvalidParams.Err, "预定义错误不应被修改")
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New(ErrCodeShelfEntry, "missing"))

	assert.True(t, HasCode(err, ErrCodeShelfEntry))
	assert.False(t, HasCode(err, ErrCodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeNotFound))
}
