package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another booking already holds part of the
// requested window.
var ErrSlotHeld = errors.New("slot window is already reserved")

// holdCellsScript is a package-level Lua script.
// Redis Go client automatically uses EVALSHA (send SHA hash only) after the first call,
// instead of EVAL (send full script text every time).
//
// Logic:
// 1. EXISTS every cell key of the requested window
// 2. If any cell is taken → return 0 without touching anything (window held)
// 3. Otherwise SET all cells with a TTL and return 1
//
// Lua scripts run atomically inside Redis, so two concurrent bookings can
// never both see the window as free.
var holdCellsScript = redis.NewScript(`
	for i, key in ipairs(KEYS) do
		if redis.call('EXISTS', key) == 1 then
			return 0
		end
	end
	for i, key in ipairs(KEYS) do
		redis.call('SET', key, ARGV[1], 'PX', ARGV[2])
	end
	return 1
`)

const (
	// Redis key prefix for in-flight booking reservations
	RedisReservationKeyPrefix = "reservation:"

	// Windows are marked in fixed cells so two bookings of different
	// durations still collide on any shared minute. Five minutes is the
	// smallest duration the API accepts.
	reservationCellMinutes = 5

	// A hold only has to cover the conflict check and the DB commit; the
	// TTL is a safety net for a process dying mid-booking.
	reservationTTL = 30 * time.Second
)

// SlotReservationService serializes concurrent bookings for the same vet and
// window through an atomic Redis hold. The hold is taken before the DB
// conflict check and released once the transaction outcome is visible, so
// two requests for overlapping windows can never both pass CountOverlapping.
type SlotReservationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotReservationService(redisClient *redis.Client, log *logrus.Logger) *SlotReservationService {
	return &SlotReservationService{
		redisClient: redisClient,
		log:         log,
	}
}

// reservationCells returns the Unix timestamps of every fixed-size cell the
// half-open window [startsAt, startsAt+duration) intersects. Two windows
// overlap on at least one minute iff they share at least one cell.
func reservationCells(startsAt time.Time, durationMinutes int) []int64 {
	cellSeconds := int64(reservationCellMinutes * 60)
	start := startsAt.Unix() / cellSeconds * cellSeconds
	end := startsAt.Add(time.Duration(durationMinutes) * time.Minute).Unix()

	var cells []int64
	for cell := start; cell < end; cell += cellSeconds {
		cells = append(cells, cell)
	}
	return cells
}

func reservationKeys(vetID uuid.UUID, startsAt time.Time, durationMinutes int) []string {
	cells := reservationCells(startsAt, durationMinutes)
	keys := make([]string, len(cells))
	for i, cell := range cells {
		keys[i] = fmt.Sprintf("%s%s:%d", RedisReservationKeyPrefix, vetID, cell)
	}
	return keys
}

// Hold atomically reserves the window for the vet. Returns ErrSlotHeld when
// any cell is already taken by a concurrent booking.
func (s *SlotReservationService) Hold(ctx context.Context, vetID uuid.UUID, startsAt time.Time, durationMinutes int) error {
	keys := reservationKeys(vetID, startsAt, durationMinutes)

	result, err := holdCellsScript.Run(ctx, s.redisClient, keys, "held", reservationTTL.Milliseconds()).Int()
	if err != nil {
		s.log.Warnf("Failed to reserve slot window for vet %s: %+v", vetID, err)
		return fmt.Errorf("reserve slot window for vet %s: %w", vetID, err)
	}

	if result == 0 {
		return ErrSlotHeld
	}

	return nil
}

// Release frees the hold. Called after the booking transaction settles,
// committed or not: a committed row is visible to the DB conflict check, and
// a failed booking must give the window back.
func (s *SlotReservationService) Release(ctx context.Context, vetID uuid.UUID, startsAt time.Time, durationMinutes int) {
	keys := reservationKeys(vetID, startsAt, durationMinutes)

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		// The TTL cleans up after us
		s.log.Warnf("Failed to release slot window for vet %s: %+v", vetID, err)
	}
}
