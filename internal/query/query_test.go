package query

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_Success(t *testing.T) {
	release := make(chan struct{})
	r := Start(context.Background(), func(context.Context) (int, error) {
		<-release
		return 42, nil
	})

	snap := r.Result()
	assert.True(t, snap.IsLoading)
	assert.Nil(t, snap.Data)
	assert.NoError(t, snap.Err)

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	snap = r.Wait(ctx)

	assert.False(t, snap.IsLoading)
	require.NotNil(t, snap.Data)
	assert.Equal(t, 42, *snap.Data)
	assert.NoError(t, snap.Err)
}

func TestResource_Error(t *testing.T) {
	boom := errors.New("boom")
	r := Start(context.Background(), func(context.Context) (string, error) {
		return "ignored", boom
	})

	<-r.Done()
	snap := r.Result()
	assert.False(t, snap.IsLoading)
	assert.Nil(t, snap.Data)
	assert.ErrorIs(t, snap.Err, boom)
}

func TestResource_WaitCancelled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	r := Start(context.Background(), func(context.Context) (int, error) {
		<-block
		return 0, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, r.Wait(ctx).IsLoading)
}

func TestFetchAll(t *testing.T) {
	var calls atomic.Int32
	err := FetchAll(context.Background(),
		func(context.Context) error { calls.Add(1); return nil },
		func(context.Context) error { calls.Add(1); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAll_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	err := FetchAll(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)
	assert.ErrorIs(t, err, boom)
}
