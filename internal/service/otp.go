package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cheechan-golf/backend/internal/rate"
	"github.com/cheechan-golf/backend/internal/sms"
	"github.com/cheechan-golf/backend/pkg/logger"
)

// otpService is a stateless relay in front of the external OTP provider.
// The provider owns token issuance, validation and expiry; the only local
// concern is the optional per-phone request throttle.
type otpService struct {
	provider OTPProvider
	limiter  RateLimiter
}

func newOTPService(provider OTPProvider, limiter RateLimiter) *otpService {
	return &otpService{
		provider: provider,
		limiter:  limiter,
	}
}

func (s *otpService) Request(ctx context.Context, phoneNumber string) (*sms.Result, error) {
	if s.limiter != nil {
		if err := s.limiter.CanRequest(ctx, phoneNumber); err != nil {
			if errors.Is(err, rate.ErrTooSoon) || errors.Is(err, rate.ErrBlocked) {
				return nil, err
			}
			// A broken throttle store must not take OTP delivery
			// down with it: fail open.
			logger.Error("otp throttle check failed", zap.Error(err))
		}
	}

	return s.provider.Request(ctx, phoneNumber)
}

func (s *otpService) Verify(ctx context.Context, token, otpCode string) (*sms.Result, error) {
	return s.provider.Verify(ctx, token, otpCode)
}
