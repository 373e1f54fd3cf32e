package queries

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStaffQueryHandler reads the staff roster.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

// NewListStaffQueryHandler creates a handler for staff listings.
func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

// Handle executes the query. Accounts are returned newest first.
func (h ListStaffQueryHandler) Handle(
	ctx context.Context,
	query ListStaffQuery,
) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().Role.IsAdmin() {
		return nil, fmt.Errorf("%w: staff roster is for admins", errs.ErrForbidden)
	}

	accounts := make([]StaffResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM users
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StaffResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.Role, &resp.CreatedAt); err != nil {
			return nil, err
		}

		staffID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = staffID

		accounts = append(accounts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
