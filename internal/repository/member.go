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

const memberColumns = "id, name, surname, fullname, mobile, email, birthdate, start_privilege_date, created_at, updated_at"

type memberRepository struct {
	db *sqlx.DB
}

func newMemberRepository(db *sqlx.DB) *memberRepository {
	return &memberRepository{
		db: db,
	}
}

func (r *memberRepository) Upsert(ctx context.Context, member *domain.Member) (*domain.Member, bool, error) {
	const op = "repository.member.Upsert"

	// start_privilege_date is deliberately absent from the UPDATE list:
	// first write wins for the privilege start, last write wins for the
	// rest. The unique keys on email and mobile make the whole
	// find-or-create step a single atomic statement.
	const query = `
	INSERT INTO member (id, name, surname, fullname, mobile, email, birthdate, start_privilege_date)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		name = VALUES(name),
		surname = VALUES(surname),
		fullname = VALUES(fullname),
		mobile = VALUES(mobile),
		birthdate = VALUES(birthdate);
	`

	res, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Surname,
		member.Fullname,
		member.Mobile,
		member.Email,
		member.Birthdate,
		member.StartPrivilegeDate,
	)
	if err != nil {
		return nil, false, fmt.Errorf("%s: upsert member failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	// MySQL reports 1 affected row for an insert, 2 for an update and 0
	// when the update changed nothing.
	created := rows == 1

	stored, err := r.getByEmailOrMobile(ctx, member.Email, member.Mobile)
	if err != nil {
		return nil, false, fmt.Errorf("%s: reread member failed: %w", op, err)
	}

	return stored, created, nil
}

func (r *memberRepository) UpdateByMobile(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	const op = "repository.member.UpdateByMobile"

	const query = `
	UPDATE member
	SET name = ?, surname = ?, fullname = ?, birthdate = ?, email = ?
	WHERE mobile = ?;
	`

	_, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.Surname,
		member.Fullname,
		member.Birthdate,
		member.Email,
		member.Mobile,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: update member by mobile failed: %w", op, err)
	}

	stored, err := r.GetByMobile(ctx, member.Mobile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: reread member failed: %w", op, err)
	}

	return stored, nil
}

func (r *memberRepository) UpdateProfileByEmail(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	const op = "repository.member.UpdateProfileByEmail"

	const query = `
	UPDATE member
	SET name = ?, surname = ?, fullname = ?, mobile = ?, birthdate = ?, start_privilege_date = ?
	WHERE email = ?;
	`

	_, err := r.db.ExecContext(ctx, query,
		member.Name,
		member.Surname,
		member.Fullname,
		member.Mobile,
		member.Birthdate,
		member.StartPrivilegeDate,
		member.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: update member by email failed: %w", op, err)
	}

	stored, err := r.GetByEmail(ctx, member.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: reread member failed: %w", op, err)
	}

	return stored, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	const query = `
	SELECT ` + memberColumns + ` FROM member WHERE email = ?;
	`
	var member domain.Member
	if err := r.db.GetContext(ctx, &member, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from member by email failed: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Member, error) {
	const query = `
	SELECT ` + memberColumns + ` FROM member WHERE mobile = ?;
	`
	var member domain.Member
	if err := r.db.GetContext(ctx, &member, query, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from member by mobile failed: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	const query = `
	SELECT ` + memberColumns + ` FROM member WHERE id = uuid_to_bin(?);
	`
	var member domain.Member
	if err := r.db.GetContext(ctx, &member, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from member by id failed: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) GetAll(ctx context.Context) ([]domain.Member, error) {
	const query = `
	SELECT ` + memberColumns + ` FROM member ORDER BY created_at;
	`
	members := make([]domain.Member, 0)
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("select all members failed: %w", err)
	}

	return members, nil
}

func (r *memberRepository) getByEmailOrMobile(ctx context.Context, email, mobile string) (*domain.Member, error) {
	const query = `
	SELECT ` + memberColumns + ` FROM member WHERE email = ? OR mobile = ? LIMIT 1;
	`
	var member domain.Member
	if err := r.db.GetContext(ctx, &member, query, email, mobile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from member by email or mobile failed: %w", err)
	}

	return &member, nil
}
