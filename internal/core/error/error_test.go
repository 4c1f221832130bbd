package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := New(cause, http.StatusBadGateway, RedisErrorMessage)

	assert.Equal(t, "redis operation failed: boom", appErr.Error())
	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	require.ErrorAs(t, error(appErr), &target)
	assert.Equal(t, http.StatusBadGateway, target.Status)
}

func TestWrapRedis(t *testing.T) {
	assert.NoError(t, WrapRedis(nil))

	var appErr *AppError
	require.ErrorAs(t, WrapRedis(redis.Nil), &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, RedisNotFoundMessage, appErr.Message)

	require.ErrorAs(t, WrapRedis(errors.New("connection refused")), &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}
