package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/sms"
)

// fakeMemberRepo mirrors the atomic upsert semantics of the MySQL
// repository: conflict on unique email or mobile turns the insert into an
// update that never touches id, email or start_privilege_date.
type fakeMemberRepo struct {
	members []*domain.Member
}

func (f *fakeMemberRepo) Upsert(_ context.Context, member *domain.Member) (*domain.Member, bool, error) {
	for _, existing := range f.members {
		if f.conflicts(existing, member) {
			existing.Name = member.Name
			existing.Surname = member.Surname
			existing.Fullname = member.Fullname
			existing.Mobile = member.Mobile
			existing.Birthdate = member.Birthdate
			stored := *existing
			return &stored, false, nil
		}
	}

	stored := *member
	f.members = append(f.members, &stored)
	out := stored
	return &out, true, nil
}

func (f *fakeMemberRepo) conflicts(existing, member *domain.Member) bool {
	if member.Email != "" && existing.Email == member.Email {
		return true
	}
	return member.Mobile != "" && existing.Mobile == member.Mobile
}

func (f *fakeMemberRepo) UpdateByMobile(_ context.Context, member *domain.Member) (*domain.Member, error) {
	for _, existing := range f.members {
		if existing.Mobile == member.Mobile {
			existing.Name = member.Name
			existing.Surname = member.Surname
			existing.Fullname = member.Fullname
			existing.Birthdate = member.Birthdate
			existing.Email = member.Email
			stored := *existing
			return &stored, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) UpdateProfileByEmail(_ context.Context, member *domain.Member) (*domain.Member, error) {
	for _, existing := range f.members {
		if existing.Email == member.Email {
			existing.Name = member.Name
			existing.Surname = member.Surname
			existing.Fullname = member.Fullname
			existing.Mobile = member.Mobile
			existing.Birthdate = member.Birthdate
			existing.StartPrivilegeDate = member.StartPrivilegeDate
			stored := *existing
			return &stored, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	for _, existing := range f.members {
		if existing.Email == email {
			stored := *existing
			return &stored, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) GetByMobile(_ context.Context, mobile string) (*domain.Member, error) {
	for _, existing := range f.members {
		if existing.Mobile == mobile {
			stored := *existing
			return &stored, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) GetOneByID(_ context.Context, id uuid.UUID) (*domain.Member, error) {
	for _, existing := range f.members {
		if existing.ID == id {
			stored := *existing
			return &stored, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) GetAll(_ context.Context) ([]domain.Member, error) {
	out := make([]domain.Member, 0, len(f.members))
	for _, existing := range f.members {
		out = append(out, *existing)
	}
	return out, nil
}

type fakeConsentRepo struct {
	consents map[uuid.UUID]*domain.Consent
}

func newFakeConsentRepo() *fakeConsentRepo {
	return &fakeConsentRepo{consents: make(map[uuid.UUID]*domain.Consent)}
}

func (f *fakeConsentRepo) Upsert(_ context.Context, consent *domain.Consent) (*domain.Consent, error) {
	if existing, ok := f.consents[consent.UserID]; ok {
		existing.Checkbox1 = consent.Checkbox1
		existing.Checkbox2 = consent.Checkbox2
		stored := *existing
		return &stored, nil
	}

	stored := *consent
	f.consents[consent.UserID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeConsentRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Consent, error) {
	if existing, ok := f.consents[userID]; ok {
		stored := *existing
		return &stored, nil
	}
	return nil, domain.ErrNotFound
}

type fakeProvider struct {
	requests []string
	verifies [][2]string
	result   *sms.Result
	err      error
}

func (f *fakeProvider) Request(_ context.Context, msisdn string) (*sms.Result, error) {
	f.requests = append(f.requests, msisdn)
	return f.result, f.err
}

func (f *fakeProvider) Verify(_ context.Context, token, pin string) (*sms.Result, error) {
	f.verifies = append(f.verifies, [2]string{token, pin})
	return f.result, f.err
}

type fakeLimiter struct {
	err   error
	calls []string
}

func (f *fakeLimiter) CanRequest(_ context.Context, msisdn string) error {
	f.calls = append(f.calls, msisdn)
	return f.err
}
