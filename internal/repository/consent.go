package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cheechan-golf/backend/internal/domain"
)

type consentRepository struct {
	db *sqlx.DB
}

func newConsentRepository(db *sqlx.DB) *consentRepository {
	return &consentRepository{
		db: db,
	}
}

func (r *consentRepository) Upsert(ctx context.Context, consent *domain.Consent) (*domain.Consent, error) {
	const op = "repository.consent.Upsert"

	const query = `
	INSERT INTO consent_pdpa (id, user_id, checkbox1, checkbox2)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?)
	ON DUPLICATE KEY UPDATE
		checkbox1 = VALUES(checkbox1),
		checkbox2 = VALUES(checkbox2);
	`

	_, err := r.db.ExecContext(ctx, query,
		consent.ID,
		consent.UserID,
		consent.Checkbox1,
		consent.Checkbox2,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: upsert consent failed: %w", op, err)
	}

	stored, err := r.GetByUserID(ctx, consent.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: reread consent failed: %w", op, err)
	}

	return stored, nil
}

func (r *consentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Consent, error) {
	const query = `
	SELECT id, user_id, checkbox1, checkbox2, created_at, updated_at
	FROM consent_pdpa
	WHERE user_id = uuid_to_bin(?);
	`
	var consent domain.Consent
	if err := r.db.GetContext(ctx, &consent, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select consent by user id failed: %w", err)
	}

	return &consent, nil
}
