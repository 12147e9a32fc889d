package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cheechan-golf/backend/internal/domain"
)

type Repositories struct {
	Members  Members
	Consents Consents
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Members:  newMemberRepository(db),
		Consents: newConsentRepository(db),
	}
}

type Members interface {
	// Upsert atomically inserts the member or, when the unique email or
	// mobile already exists, updates the mutable fields of that row.
	// start_privilege_date is written only on insert. Returns the stored
	// row and whether it was newly created.
	Upsert(ctx context.Context, member *domain.Member) (*domain.Member, bool, error)
	UpdateByMobile(ctx context.Context, member *domain.Member) (*domain.Member, error)
	UpdateProfileByEmail(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Member, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	GetAll(ctx context.Context) ([]domain.Member, error)
}

type Consents interface {
	// Upsert creates the consent row for the member or overwrites the
	// checkbox flags of the existing one (unique key on user_id).
	Upsert(ctx context.Context, consent *domain.Consent) (*domain.Consent, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Consent, error)
}
