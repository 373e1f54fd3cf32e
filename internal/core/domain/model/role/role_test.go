package role_test

import (
	"testing"

	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	testCases := []struct {
		raw      string
		expected role.Role
	}{
		{"customer", role.Customer},
		{"courier", role.Courier},
		{"admin", role.Admin},
		{"owner", role.Owner},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			r, err := role.FromString(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r)
			assert.Equal(t, tc.raw, r.String())
		})
	}

	t.Run("unknown string fails", func(t *testing.T) {
		_, err := role.FromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown is not parseable", func(t *testing.T) {
		_, err := role.FromString("unknown")
		require.Error(t, err)
	})
}

func TestRoleValidate(t *testing.T) {
	require.NoError(t, role.Customer.Validate())
	require.NoError(t, role.Owner.Validate())
	require.ErrorIs(t, role.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, role.Role(42).Validate(), errs.ErrValueIsInvalid)
}

func TestRolePredicates(t *testing.T) {
	testCases := []struct {
		role       role.Role
		isCustomer bool
		isCourier  bool
		isAdmin    bool
		isStaff    bool
	}{
		{role.Customer, true, false, false, false},
		{role.Courier, false, true, false, true},
		{role.Admin, false, true, true, true},
		{role.Owner, false, false, true, true},
		{role.Unknown, false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.isCustomer, tc.role.IsCustomer())
			assert.Equal(t, tc.isCourier, tc.role.IsCourier())
			assert.Equal(t, tc.isAdmin, tc.role.IsAdmin())
			assert.Equal(t, tc.isStaff, tc.role.IsStaff())
		})
	}
}
