package lib

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const SweepLockKey = "guestdesk:reminder-sweep"

const releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

var redisClient *redis.Client

func GetRedisClient(url string) *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	redisClient = redis.NewClient(opt)
	return redisClient
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// SweepLock keeps two instances from running the reminder sweep at once.
type SweepLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewSweepLock(c *redis.Client, ttl time.Duration) *SweepLock {
	return &SweepLock{client: c, key: SweepLockKey, ttl: ttl}
}

// Acquire reports whether the lock was taken for token.
func (l *SweepLock) Acquire(ctx context.Context, token string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		log.Printf("[redis] Error acquiring %s: %s\n", l.key, err.Error())
		return false, err
	}
	return ok, nil
}

// Release drops the lock only if token still owns it.
func (l *SweepLock) Release(ctx context.Context, token string) error {
	n, err := l.client.Eval(ctx, releaseLockScript, []string{l.key}, token).Int()
	if err != nil {
		log.Printf("[redis] Error releasing %s: %s\n", l.key, err.Error())
		return err
	}
	if n == 0 {
		log.Printf("[redis] Lock %s expired before release\n", l.key)
	}
	return nil
}
