package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/repository"
)

type consentService struct {
	memberRepository  repository.Members
	consentRepository repository.Consents
}

func newConsentService(memberRepository repository.Members, consentRepository repository.Consents) *consentService {
	return &consentService{
		memberRepository:  memberRepository,
		consentRepository: consentRepository,
	}
}

func (s *consentService) Check(ctx context.Context, email string) (*domain.Consent, error) {
	member, err := s.memberRepository.GetByEmail(ctx, email)
	if err != nil {
		// An unknown email reads as "no consent on file", same as a
		// known member who never submitted the form.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by email failed: %w", err)
	}

	consent, err := s.consentRepository.GetByUserID(ctx, member.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consent by user id failed: %w", err)
	}

	return consent, nil
}

func (s *consentService) Save(ctx context.Context, mobile, email string, checkbox1, checkbox2 bool) (*domain.Consent, error) {
	var (
		member *domain.Member
		err    error
	)

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

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate consent id failed: %w", err)
	}

	consent, err := s.consentRepository.Upsert(ctx, &domain.Consent{
		ID:        id,
		UserID:    member.ID,
		Checkbox1: checkbox1,
		Checkbox2: checkbox2,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert consent failed: %w", err)
	}

	return consent, nil
}
