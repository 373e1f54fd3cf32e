package queries

import (
	"context"
	"database/sql"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler reads the session owner's account record from the
// table matching their role.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile reads.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. A principal whose account has been deleted
// since the token was issued gets errs.ErrObjectNotFound.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	actor := query.Actor()
	if actor.Role.IsCustomer() {
		return h.customerProfile(ctx, actor.ID)
	}
	return h.staffProfile(ctx, actor.ID)
}

func (h GetProfileQueryHandler) customerProfile(
	ctx context.Context,
	id kernel.UUID,
) (ProfileResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			birthdate,
			address,
			created_at,
			'customer'
		FROM customers
		WHERE id = ?
	`, id.Bytes()).Row()

	return h.scanProfile(row, id)
}

func (h GetProfileQueryHandler) staffProfile(
	ctx context.Context,
	id kernel.UUID,
) (ProfileResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			'',
			NULL::timestamptz,
			'',
			created_at,
			role
		FROM users
		WHERE id = ?
	`, id.Bytes()).Row()

	return h.scanProfile(row, id)
}

func (h GetProfileQueryHandler) scanProfile(
	row *sql.Row,
	id kernel.UUID,
) (ProfileResponse, error) {
	var resp ProfileResponse
	var rawID uuid.UUID

	err := row.Scan(
		&rawID,
		&resp.Name,
		&resp.Email,
		&resp.Phone,
		&resp.Birthdate,
		&resp.Address,
		&resp.CreatedAt,
		&resp.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, errs.NewObjectNotFoundError("accountId", id)
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return ProfileResponse{}, err
	}
	resp.ID = accountID

	return resp, nil
}
