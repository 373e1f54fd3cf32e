package queries_test

import (
	"testing"

	"catering/internal/core/application/auth"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(t *testing.T, r role.Role) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), "actor@example.com", r)
	require.NoError(t, err)
	return p
}

func TestParameterlessQueries_Valid(t *testing.T) {
	require.NoError(t, queries.NewListPackagesQuery().Validate())
	require.NoError(t, queries.NewListPaymentMethodsQuery().Validate())
	require.NoError(t, queries.NewGetOrderBacklogQuery().Validate())
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t,
		queries.ListPackagesQuery{}.Validate(),
		queries.ErrListPackagesQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetPackageQuery{}.Validate(),
		queries.ErrGetPackageQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListOrdersQuery{}.Validate(),
		queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetOrderQuery{}.Validate(),
		queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListDeliveryTasksQuery{}.Validate(),
		queries.ErrListDeliveryTasksQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListCustomersQuery{}.Validate(),
		queries.ErrListCustomersQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListStaffQuery{}.Validate(),
		queries.ErrListStaffQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.ListPaymentMethodsQuery{}.Validate(),
		queries.ErrListPaymentMethodsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetProfileQuery{}.Validate(),
		queries.ErrGetProfileQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetDashboardStatsQuery{}.Validate(),
		queries.ErrGetDashboardStatsQueryIsNotConstructed)
	assert.ErrorIs(t,
		queries.GetOrderBacklogQuery{}.Validate(),
		queries.ErrGetOrderBacklogQueryIsNotConstructed)
}

func TestActorQueries_RequireConstructedPrincipal(t *testing.T) {
	_, err := queries.NewListOrdersQuery(auth.Principal{})
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(auth.Principal{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewListDeliveryTasksQuery(auth.Principal{})
	require.Error(t, err)

	_, err = queries.NewGetDashboardStatsQuery(auth.Principal{})
	require.Error(t, err)
}

func TestActorQueries_Valid(t *testing.T) {
	q, err := queries.NewListOrdersQuery(principal(t, role.Customer))
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	g, err := queries.NewGetOrderQuery(principal(t, role.Admin), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	d, err := queries.NewListDeliveryTasksQuery(principal(t, role.Courier))
	require.NoError(t, err)
	require.NoError(t, d.Validate())
}
