package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/repository"
	"github.com/cheechan-golf/backend/internal/sms"
)

type Services struct {
	Members  Members
	Consents Consents
	OTP      OTP
}

// OTPProvider is the narrow surface we need from the external SMS/OTP
// collaborator. The real implementation is sms.Client.
type OTPProvider interface {
	Request(ctx context.Context, msisdn string) (*sms.Result, error)
	Verify(ctx context.Context, token, pin string) (*sms.Result, error)
}

// RateLimiter throttles OTP requests per phone number. Nil disables it.
type RateLimiter interface {
	CanRequest(ctx context.Context, msisdn string) error
}

type Deps struct {
	Repos       *repository.Repositories
	OTPProvider OTPProvider
	RateLimiter RateLimiter
}

func NewServices(deps Deps) *Services {
	return &Services{
		Members:  newMemberService(deps.Repos.Members, deps.Repos.Consents),
		Consents: newConsentService(deps.Repos.Members, deps.Repos.Consents),
		OTP:      newOTPService(deps.OTPProvider, deps.RateLimiter),
	}
}

type Members interface {
	// Get resolves a member by email when present, otherwise by mobile.
	// Both keys empty is ErrMissingLookupKey.
	Get(ctx context.Context, mobile, email string) (*domain.Member, error)
	GetAll(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	AddOrUpdate(ctx context.Context, input AddOrUpdateInput) (*domain.Member, bool, error)
	UpdateByMobile(ctx context.Context, input AddOrUpdateInput) (*domain.Member, error)
	Profile(ctx context.Context, email string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (*domain.Member, error)
}

type Consents interface {
	// Check returns (nil, nil) when the member or the consent record is
	// absent: missing consent is a valid state, not an error.
	Check(ctx context.Context, email string) (*domain.Consent, error)
	Save(ctx context.Context, mobile, email string, checkbox1, checkbox2 bool) (*domain.Consent, error)
}

type OTP interface {
	Request(ctx context.Context, phoneNumber string) (*sms.Result, error)
	Verify(ctx context.Context, token, otpCode string) (*sms.Result, error)
}
