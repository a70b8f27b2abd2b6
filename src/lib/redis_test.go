package lib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepLockAcquire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	lock := NewSweepLock(db, time.Minute)
	ctx := context.Background()

	mock.ExpectSetNX(SweepLockKey, "run-1", time.Minute).SetVal(true)
	ok, err := lock.Acquire(ctx, "run-1")
	require.Nil(t, err)
	assert.True(t, ok)

	mock.ExpectSetNX(SweepLockKey, "run-2", time.Minute).SetVal(false)
	ok, err = lock.Acquire(ctx, "run-2")
	require.Nil(t, err)
	assert.False(t, ok)

	mock.ExpectSetNX(SweepLockKey, "run-3", time.Minute).SetErr(errors.New("connection refused"))
	_, err = lock.Acquire(ctx, "run-3")
	assert.EqualError(t, err, "connection refused")

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSweepLockRelease(t *testing.T) {
	db, mock := redismock.NewClientMock()
	lock := NewSweepLock(db, time.Minute)
	ctx := context.Background()

	mock.ExpectEval(releaseLockScript, []string{SweepLockKey}, "run-1").SetVal(int64(1))
	assert.Nil(t, lock.Release(ctx, "run-1"))

	mock.ExpectEval(releaseLockScript, []string{SweepLockKey}, "run-2").SetVal(int64(0))
	assert.Nil(t, lock.Release(ctx, "run-2"))

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetRedisClientReusesInstance(t *testing.T) {
	db, _ := redismock.NewClientMock()
	NewRedisClient(db)
	t.Cleanup(func() { NewRedisClient(nil) })

	assert.Same(t, db, GetRedisClient("redis://ignored:6379"))
}
