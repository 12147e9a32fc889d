package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cheechan-golf/backend/internal/config"
)

var (
	ErrTooSoon = errors.New("please wait before requesting another OTP")
	ErrBlocked = errors.New("too many OTP requests; try again later")
)

// Limiter throttles OTP requests per phone number: a cooldown between
// consecutive requests and a capped count inside a sliding window. State
// lives in redis so the API itself stays stateless across instances.
type Limiter struct {
	rdb         *redis.Client
	cooldown    time.Duration
	window      time.Duration
	maxInWindow int
}

func NewLimiter(rdb *redis.Client, cfg config.OTPRate) *Limiter {
	return &Limiter{
		rdb:         rdb,
		cooldown:    cfg.Cooldown,
		window:      cfg.Window,
		maxInWindow: cfg.MaxInWindow,
	}
}

// CanRequest returns ErrTooSoon or ErrBlocked when the phone number must
// wait, nil when a provider call is allowed. Redis failures are returned
// as-is; the caller decides whether to fail open or closed.
func (l *Limiter) CanRequest(ctx context.Context, msisdn string) error {
	lastKey := fmt.Sprintf("otp:last:%s", msisdn)
	countKey := fmt.Sprintf("otp:count:%s", msisdn)

	ok, err := l.rdb.SetNX(ctx, lastKey, "1", l.cooldown).Result()
	if err != nil {
		return fmt.Errorf("otp cooldown check failed: %w", err)
	}
	if !ok {
		return ErrTooSoon
	}

	count, err := l.rdb.Incr(ctx, countKey).Result()
	if err != nil {
		return fmt.Errorf("otp window count failed: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, countKey, l.window).Err(); err != nil {
			return fmt.Errorf("otp window expire failed: %w", err)
		}
	}
	if int(count) > l.maxInWindow {
		return ErrBlocked
	}

	return nil
}
