package postgres_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAgenciesOrderedByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM agencies ORDER BY name, id LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "org_number", "phone", "website", "created_at", "updated_at",
		}).
			AddRow(int64(2), "Alfa Homes", nil, nil, nil, now, nil).
			AddRow(int64(1), "Beta Estates", nil, nil, nil, now, nil))

	limit := 10
	repo := NewDirectoryRepository(mock, discardLogger{})
	agencies, err := repo.ListAgencies(context.Background(), &limit, nil)

	require.NoError(t, err)
	require.Len(t, agencies, 2)
	assert.Equal(t, "Alfa Homes", agencies[0].Name)
	assert.Equal(t, "Beta Estates", agencies[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
