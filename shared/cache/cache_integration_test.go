package cache_test

import (
	"context"
	"testing"
	"time"
	"usertodo/config"
	"usertodo/infras/otel/mocks"
	"usertodo/infras/redis"
	"usertodo/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisCache_Increment(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port.Port()

	client, cleanup, err := redis.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(cleanup)

	c := cache.NewRedisCache(client, mocks.NewOtel())

	require.True(t, c.Enabled())
	require.NoError(t, c.Ping(ctx))

	key := "limiter:10.0.0.1:integration"

	for want := int64(1); want <= 3; want++ {
		count, err := c.Increment(ctx, key, 60)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}
