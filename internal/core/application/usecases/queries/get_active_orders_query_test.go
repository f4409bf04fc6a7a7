package queries_test

import (
	"testing"

	"ordernotify/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()
	require.NoError(t, query.Validate())
	assert.False(t, query.IncludeArchived())
}

func TestNewGetActiveOrdersQueryWithArchived_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQueryWithArchived()
	require.NoError(t, query.Validate())
	assert.True(t, query.IncludeArchived())
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
