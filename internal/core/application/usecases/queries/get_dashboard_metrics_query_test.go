package queries_test

import (
	"testing"

	"ordernotify/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDashboardMetricsQuery_Valid(t *testing.T) {
	query := queries.NewGetDashboardMetricsQuery()
	require.NoError(t, query.Validate())
}

func TestGetDashboardMetricsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardMetricsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardMetricsQueryIsNotConstructed)
}
