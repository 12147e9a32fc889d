package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/service"
	"github.com/cheechan-golf/backend/internal/sms"
	"github.com/cheechan-golf/backend/pkg/validator"
)

func setupRouter(services *service.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	router := gin.New()
	NewHandler(services).Init(&router.RouterGroup)
	return router
}

type fakeMembers struct {
	member  *domain.Member
	members []domain.Member
	profile *domain.Profile
	created bool
	err     error
}

func (f *fakeMembers) Get(context.Context, string, string) (*domain.Member, error) {
	return f.member, f.err
}

func (f *fakeMembers) GetAll(context.Context) ([]domain.Member, error) {
	return f.members, f.err
}

func (f *fakeMembers) GetByID(context.Context, uuid.UUID) (*domain.Member, error) {
	return f.member, f.err
}

func (f *fakeMembers) AddOrUpdate(context.Context, service.AddOrUpdateInput) (*domain.Member, bool, error) {
	return f.member, f.created, f.err
}

func (f *fakeMembers) UpdateByMobile(context.Context, service.AddOrUpdateInput) (*domain.Member, error) {
	return f.member, f.err
}

func (f *fakeMembers) Profile(context.Context, string) (*domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeMembers) UpdateProfile(context.Context, service.ProfileInput) (*domain.Member, error) {
	return f.member, f.err
}

type fakeConsents struct {
	consent *domain.Consent
	err     error
}

func (f *fakeConsents) Check(context.Context, string) (*domain.Consent, error) {
	return f.consent, f.err
}

func (f *fakeConsents) Save(context.Context, string, string, bool, bool) (*domain.Consent, error) {
	return f.consent, f.err
}

type fakeOTP struct {
	result   *sms.Result
	err      error
	requests []string
	verifies [][2]string
}

func (f *fakeOTP) Request(_ context.Context, phoneNumber string) (*sms.Result, error) {
	f.requests = append(f.requests, phoneNumber)
	return f.result, f.err
}

func (f *fakeOTP) Verify(_ context.Context, token, otpCode string) (*sms.Result, error) {
	f.verifies = append(f.verifies, [2]string{token, otpCode})
	return f.result, f.err
}
