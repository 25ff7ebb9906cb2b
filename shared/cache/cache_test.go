package cache_test

import (
	"context"
	"testing"
	"usertodo/infras/otel/mocks"
	"usertodo/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestRedisCache_WithoutClient(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())

	assert.False(t, c.Enabled())

	count, err := c.Increment(context.Background(), "limiter:127.0.0.1", 60)
	assert.ErrorIs(t, err, cache.ErrDisabled)
	assert.Zero(t, count)

	assert.ErrorIs(t, c.Ping(context.Background()), cache.ErrDisabled)
}
