package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saranraj027/alliance-matrimony-backend/config"
)

var (
	redisClient *redis.Client
	redisCtx    = context.Background()
)

// InitRedis connects the shared Redis client used for session tracking
func InitRedis(cfg *config.Config) error {
	addr := cfg.RedisAddr
	if addr == "" {
		addr = "localhost:6379"
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := redisClient.Ping(redisCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// SaveSession records a live session for a user with the token TTL
func SaveSession(sessionID string, userID uint, ttl time.Duration) error {
	return redisClient.Set(redisCtx, sessionKey(sessionID), fmt.Sprint(userID), ttl).Err()
}

// SessionAlive reports whether a session has not been logged out or revoked
func SessionAlive(sessionID string) bool {
	_, err := redisClient.Get(redisCtx, sessionKey(sessionID)).Result()
	return err == nil
}

// DeleteSession tears a session down (logout, password change)
func DeleteSession(sessionID string) error {
	return redisClient.Del(redisCtx, sessionKey(sessionID)).Err()
}
