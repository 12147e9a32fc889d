package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/repository"
)

type memberService struct {
	memberRepository  repository.Members
	consentRepository repository.Consents
}

func newMemberService(memberRepository repository.Members, consentRepository repository.Consents) *memberService {
	return &memberService{
		memberRepository:  memberRepository,
		consentRepository: consentRepository,
	}
}

type AddOrUpdateInput struct {
	Name      string
	Surname   string
	Mobile    string
	Email     string
	Birthdate *time.Time
}

type ProfileInput struct {
	Email              string
	Fullname           string
	PhoneNumber        string
	Birthdate          *time.Time
	StartPrivilegeDate *time.Time
}

func (s *memberService) Get(ctx context.Context, mobile, email string) (*domain.Member, error) {
	member, err := s.findByKeys(ctx, mobile, email)
	if err != nil {
		return nil, err
	}

	if err := s.attachConsent(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) GetAll(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepository.GetAll(ctx)
}

func (s *memberService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	member, err := s.memberRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by id failed: %w", err)
	}

	if err := s.attachConsent(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// AddOrUpdate is the canonical registration upsert: first write wins for
// the privilege start date, last write wins for everything else. The
// boolean result reports whether a new member was created.
func (s *memberService) AddOrUpdate(ctx context.Context, input AddOrUpdateInput) (*domain.Member, bool, error) {
	if input.Mobile == "" && input.Email == "" {
		return nil, false, ErrMissingLookupKey
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, false, fmt.Errorf("generate member id failed: %w", err)
	}

	member := &domain.Member{
		ID:                 id,
		Name:               input.Name,
		Surname:            input.Surname,
		Fullname:           joinFullname(input.Name, input.Surname),
		Mobile:             input.Mobile,
		Email:              input.Email,
		Birthdate:          input.Birthdate,
		StartPrivilegeDate: time.Now(),
	}

	stored, created, err := s.memberRepository.Upsert(ctx, member)
	if err != nil {
		return nil, false, fmt.Errorf("upsert member failed: %w", err)
	}

	return stored, created, nil
}

func (s *memberService) UpdateByMobile(ctx context.Context, input AddOrUpdateInput) (*domain.Member, error) {
	member := &domain.Member{
		Name:      input.Name,
		Surname:   input.Surname,
		Fullname:  joinFullname(input.Name, input.Surname),
		Mobile:    input.Mobile,
		Email:     input.Email,
		Birthdate: input.Birthdate,
	}

	stored, err := s.memberRepository.UpdateByMobile(ctx, member)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("update member by mobile failed: %w", err)
	}

	return stored, nil
}

func (s *memberService) Profile(ctx context.Context, email string) (*domain.Profile, error) {
	member, err := s.memberRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by email failed: %w", err)
	}

	return &domain.Profile{
		Fullname:           member.Fullname,
		PhoneNumber:        member.Mobile,
		Birthdate:          member.Birthdate,
		Email:              member.Email,
		StartPrivilegeDate: member.StartPrivilegeDate,
	}, nil
}

func (s *memberService) UpdateProfile(ctx context.Context, input ProfileInput) (*domain.Member, error) {
	member, err := s.memberRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member by email failed: %w", err)
	}

	name, surname := splitFullname(input.Fullname)
	member.Name = name
	member.Surname = surname
	member.Fullname = input.Fullname
	member.Mobile = input.PhoneNumber
	member.Birthdate = input.Birthdate
	if input.StartPrivilegeDate != nil {
		member.StartPrivilegeDate = *input.StartPrivilegeDate
	}

	stored, err := s.memberRepository.UpdateProfileByEmail(ctx, member)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("update member profile failed: %w", err)
	}

	return stored, nil
}

func (s *memberService) findByKeys(ctx context.Context, mobile, email string) (*domain.Member, error) {
	var (
		member *domain.Member
		err    error
	)

	// Email takes priority as the lookup key; mobile is only consulted
	// when no email was submitted.
	switch {
	case email != "":
		member, err = s.memberRepository.GetByEmail(ctx, email)
	case mobile != "":
		member, err = s.memberRepository.GetByMobile(ctx, mobile)
	default:
		return nil, ErrMissingLookupKey
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member failed: %w", err)
	}

	return member, nil
}

func (s *memberService) attachConsent(ctx context.Context, member *domain.Member) error {
	consent, err := s.consentRepository.GetByUserID(ctx, member.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get consent by user id failed: %w", err)
	}

	member.Pdpa = consent
	return nil
}

func joinFullname(name, surname string) string {
	return name + " " + surname
}

// splitFullname takes the first whitespace-delimited token as the name and
// the remainder as the surname.
func splitFullname(fullname string) (string, string) {
	parts := strings.Fields(fullname)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
