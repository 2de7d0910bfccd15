package repositories_test

import (
	"testing"

	"kbbq/internal/models"
	"kbbq/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryNames(t *testing.T, repo repositories.CategoryRepository) []string {
	t.Helper()
	categories, err := repo.GetAll()
	require.NoError(t, err)
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

func TestGORMCategoryRepository(t *testing.T) {
	repo := repositories.NewGORMCategoryRepository(openSeededDB(t))

	assert.Equal(t, []string{"BBQ", "Bibimbap", "Sides", "Drinks"}, categoryNames(t, repo))

	require.NoError(t, repo.Create("Desserts"))
	assert.Equal(t, []string{"BBQ", "Bibimbap", "Sides", "Drinks", "Desserts"}, categoryNames(t, repo))
	assert.ErrorIs(t, repo.Create("Desserts"), repositories.ErrConflict)

	require.NoError(t, repo.Delete("Sides"))
	assert.Equal(t, []string{"BBQ", "Bibimbap", "Drinks", "Desserts"}, categoryNames(t, repo))
	assert.ErrorIs(t, repo.Delete("Sides"), repositories.ErrNotFound)
}

func TestGORMShopRepository(t *testing.T) {
	repo := repositories.NewGORMShopRepository(openSeededDB(t))

	shops, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []models.Shop{
		{ID: "KL-01", Name: "Seoul Grill KL", IsOpen: true},
		{ID: "PJ-02", Name: "Seoul Grill PJ", IsOpen: false},
	}, shops)

	require.NoError(t, repo.SetOpen("PJ-02", true))
	shops, err = repo.GetAll()
	require.NoError(t, err)
	assert.True(t, shops[1].IsOpen)

	assert.ErrorIs(t, repo.SetOpen("XX-99", true), repositories.ErrNotFound)
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(openSeededDB(t))

	user := &models.User{Username: "gary", Email: "gary@example.com", Password: "hash", Role: models.RoleUser}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	fetched, err := repo.GetByUsername("gary")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.UpdateRole(user.ID, models.RoleAdmin))
	fetched, err = repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, fetched.Role)

	assert.ErrorIs(t, repo.UpdateRole("missing", models.RoleAdmin), repositories.ErrNotFound)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
