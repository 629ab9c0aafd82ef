// Package cache keeps short-lived copies of appointment listings in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sebasr/clinic-service/internal/config"
	"github.com/sebasr/clinic-service/internal/models"
)

// ErrMiss is returned when a key is absent or expired
var ErrMiss = errors.New("cache miss")

const (
	keyPrefix     = "appointments:"
	generationKey = keyPrefix + "generation"
)

// AppointmentCache stores appointment listings under string keys.
// Callers read the generation before loading from the store and build keys
// with VersionedKey, so a listing loaded before an invalidation is written
// under a key no later reader uses.
type AppointmentCache interface {
	// Generation returns the current listing generation
	Generation(ctx context.Context) (int64, error)
	GetAppointments(ctx context.Context, key string) ([]models.Appointment, error)
	SetAppointments(ctx context.Context, key string, appointments []models.Appointment) error
	// InvalidateAppointments advances the generation and drops cached listings
	InvalidateAppointments(ctx context.Context) error
	Close() error
}

// AllKey is the key for the full appointment listing
func AllKey() string {
	return keyPrefix + "all"
}

// DayKey is the key for the listing of one calendar day
func DayKey(day time.Time) string {
	return keyPrefix + "today:" + day.Format("2006-01-02")
}

// VersionedKey ties a listing key to a generation
func VersionedKey(key string, generation int64) string {
	return fmt.Sprintf("%s@%d", key, generation)
}

// RedisCache implements AppointmentCache on a Redis server
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a ping
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// Generation reads the generation counter; an unset counter is generation 0
func (r *RedisCache) Generation(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	gen, err := r.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

// GetAppointments returns the cached listing or ErrMiss
func (r *RedisCache) GetAppointments(ctx context.Context, key string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value from Redis: %w", err)
	}

	var appointments []models.Appointment
	if err := json.Unmarshal(val, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode cached appointments: %w", err)
	}
	return appointments, nil
}

// SetAppointments caches a listing for the configured TTL
func (r *RedisCache) SetAppointments(ctx context.Context, key string, appointments []models.Appointment) error {
	payload, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("failed to encode appointments: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.client.Set(ctx, key, payload, r.ttl).Err()
}

// InvalidateAppointments bumps the generation, then deletes the listings
// cached under earlier generations
func (r *RedisCache) InvalidateAppointments(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to advance cache generation: %w", err)
	}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		if iter.Val() != generationKey {
			keys = append(keys, iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached appointments: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// Close closes the Redis client
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Noop is used when no Redis address is configured. Every read misses.
type Noop struct{}

// Generation is always 0
func (Noop) Generation(context.Context) (int64, error) { return 0, nil }

// GetAppointments always misses
func (Noop) GetAppointments(context.Context, string) ([]models.Appointment, error) {
	return nil, ErrMiss
}

// SetAppointments discards the listing
func (Noop) SetAppointments(context.Context, string, []models.Appointment) error { return nil }

// InvalidateAppointments does nothing
func (Noop) InvalidateAppointments(context.Context) error { return nil }

// Close does nothing
func (Noop) Close() error { return nil }
