package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vetclinic-booking/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached day availability
	RedisAvailabilityKeyPrefix = "availability:"

	// Availability is cheap to rebuild, so the cache only has to absorb
	// bursts of identical reads. Keep the TTL short.
	availabilityCacheTTL = 60 * time.Second
)

// SlotCacheService caches rendered day-availability responses in Redis.
// Entries are keyed by location, vet and date, and invalidated whenever an
// appointment for that vet/day is created, rescheduled or cancelled.
//
// The cache is best-effort: Redis failures are logged and treated as misses
// so availability reads never fail because of the cache.
type SlotCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotCacheService(redisClient *redis.Client, log *logrus.Logger) *SlotCacheService {
	return &SlotCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

func availabilityKey(locationID, vetID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisAvailabilityKeyPrefix, locationID, vetID, date)
}

// Get returns the cached response for the key, or nil on a miss.
func (s *SlotCacheService) Get(ctx context.Context, locationID, vetID uuid.UUID, date string) *dto.DayAvailabilityResponse {
	payload, err := s.redisClient.Get(ctx, availabilityKey(locationID, vetID, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read availability cache: %+v", err)
		}
		return nil
	}

	var response dto.DayAvailabilityResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		s.log.Warnf("Failed to decode cached availability: %+v", err)
		return nil
	}

	return &response
}

// Set stores the response under the key with a short TTL.
func (s *SlotCacheService) Set(ctx context.Context, locationID, vetID uuid.UUID, date string, response *dto.DayAvailabilityResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		s.log.Warnf("Failed to encode availability for cache: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, availabilityKey(locationID, vetID, date), payload, availabilityCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write availability cache: %+v", err)
	}
}

// InvalidateDay drops every cached availability entry touching the given
// location and date, regardless of vet.
func (s *SlotCacheService) InvalidateDay(ctx context.Context, locationID uuid.UUID, date string) {
	pattern := fmt.Sprintf("%s%s:*:%s", RedisAvailabilityKeyPrefix, locationID, date)

	// SCAN instead of KEYS: KEYS blocks Redis while it walks the whole
	// keyspace, SCAN iterates in small batches.
	var cursor uint64
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			s.log.Warnf("Failed to scan availability cache keys: %+v", err)
			return
		}

		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to invalidate availability cache: %+v", err)
				return
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
}
