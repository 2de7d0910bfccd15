package repositories_test

import (
	"testing"

	"kbbq/internal/models"
	"kbbq/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repositories.OpenDatabase("")
	require.NoError(t, err)
	require.NoError(t, repositories.Seed(db))
	t.Cleanup(func() { _ = repositories.CloseDatabase(db) })
	return db
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, repositories.Seed(db))

	items, err := repositories.NewGORMMenuRepository(db).GetAll()
	require.NoError(t, err)
	assert.Len(t, items, len(repositories.SeedMenu))

	categories, err := repositories.NewGORMCategoryRepository(db).GetAll()
	require.NoError(t, err)
	assert.Len(t, categories, len(repositories.SeedCategories))
}

func TestGORMMenuRepository_GetAllKeepsCatalogOrder(t *testing.T) {
	repo := repositories.NewGORMMenuRepository(openSeededDB(t))

	items, err := repo.GetAll()
	require.NoError(t, err)

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"KBQ-001", "KBQ-002", "KBQ-003", "KBQ-004"}, ids)
	assert.False(t, items[3].IsAvailable)
}

func TestGORMMenuRepository_GetByID(t *testing.T) {
	repo := repositories.NewGORMMenuRepository(openSeededDB(t))

	item, err := repo.GetByID("KBQ-002")
	require.NoError(t, err)
	assert.Equal(t, "Samgyeopsal (Pork Belly)", item.Name)
	assert.Equal(t, 26.00, item.Price)

	_, err = repo.GetByID("KBQ-999")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMMenuRepository_CreateUpdateDelete(t *testing.T) {
	repo := repositories.NewGORMMenuRepository(openSeededDB(t))

	item := &models.MenuItem{Name: "Bulgogi", Category: "Beef", Price: 24.0, Description: "Thin sliced ribeye", IsAvailable: true}
	require.NoError(t, repo.Create(item))
	assert.Regexp(t, `^KBQ-[0-9A-F]{8}$`, item.ID)
	assert.Equal(t, len(repositories.SeedMenu)+1, item.Position)

	items, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, item.ID, items[len(items)-1].ID, "new items go to the end of the catalog")

	dup := &models.MenuItem{ID: item.ID, Name: "Other"}
	assert.ErrorIs(t, repo.Create(dup), repositories.ErrConflict)

	item.Price = 25.5
	item.IsAvailable = false
	require.NoError(t, repo.Update(item))
	fetched, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.5, fetched.Price)
	assert.False(t, fetched.IsAvailable)

	assert.ErrorIs(t, repo.Update(&models.MenuItem{ID: "KBQ-404", Name: "Ghost"}), repositories.ErrNotFound)

	require.NoError(t, repo.Delete(item.ID))
	_, err = repo.GetByID(item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(item.ID), repositories.ErrNotFound)
}
