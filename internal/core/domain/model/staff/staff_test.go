package staff_test

import (
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/core/domain/model/staff"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	now := time.Now()

	t.Run("valid staff account", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := staff.NewStaff(id, "Admin", "admin@catering.test", "$2a$10$hash", role.Admin, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Admin", s.Name())
		assert.Equal(t, "admin@catering.test", s.Email())
		assert.Equal(t, role.Admin, s.Role())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("courier role is accepted", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "Courier", "courier@catering.test", "hash", role.Courier, now)
		require.NoError(t, err)
	})

	t.Run("customer role is rejected", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "Nope", "nope@catering.test", "hash", role.Customer, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), "", "", "", role.Admin, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := staff.NewStaff(zero, "Admin", "admin@catering.test", "hash", role.Admin, now)
		require.Error(t, err)
	})
}

func TestStaffValidate(t *testing.T) {
	var s staff.Staff
	require.ErrorIs(t, s.Validate(), staff.ErrStaffIsNotConstructed)

	var nilStaff *staff.Staff
	require.ErrorIs(t, nilStaff.Validate(), staff.ErrStaffIsNotConstructed)
}

func TestStaffIsEqual(t *testing.T) {
	now := time.Now()
	a, err := staff.NewStaff(kernel.NewUUID(), "A", "a@catering.test", "hash", role.Owner, now)
	require.NoError(t, err)
	b, err := staff.NewStaff(kernel.NewUUID(), "B", "b@catering.test", "hash", role.Owner, now)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
