package queries_test

import (
	"testing"

	"tableside/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTablesQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetTablesQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		query := queries.GetTablesQuery{}
		assert.ErrorIs(t, query.Validate(), queries.ErrGetTablesQueryIsNotConstructed)
	})
}
