package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilityhub/UtilityHub/app/models"
)

func TestServiceRepositorySoftDelete(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))
	s := models.NewService(models.ServiceParams{
		ServiceID: "S-1", Name: "Water", Category: "Utility", Price: 12.5,
	})
	require.NoError(t, repo.Create(s))
	require.NoError(t, repo.Create(models.NewService(models.ServiceParams{
		ServiceID: "S-2", Name: "Electricity", Category: "Utility", Price: 20,
	})))

	require.NoError(t, repo.Deactivate(s.ID))

	active, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Electricity", active[0].Name)

	// row still exists; only the status flipped
	got, err := repo.GetByName("Water")
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
