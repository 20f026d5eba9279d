package idempotent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIdempotencyService(t *testing.T) {
	t.Parallel()

	svc := NewLocalIdempotencyService(50 * time.Millisecond)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, "1001:7:3")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.Exists(ctx, "1001:7:3")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(ctx, "1001:7:2")
	require.NoError(t, err)
	assert.False(t, exists)

	time.Sleep(100 * time.Millisecond)
	exists, err = svc.Exists(ctx, "1001:7:3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalIdempotencyService_Release(t *testing.T) {
	t.Parallel()

	svc := NewLocalIdempotencyService(time.Minute)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, "1001:7:3")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.Release(ctx, "1001:7:3"))
	exists, err = svc.Exists(ctx, "1001:7:3")
	require.NoError(t, err)
	assert.False(t, exists)
}
