package favorite

import (
	"Recipe-Catalog/entities"
	"Recipe-Catalog/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewStorageDatabase(t)
	store := NewGormStore(db)

	_, found, err := store.Read(ctx, PrimaryKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Write(ctx, PrimaryKey, `[{"id":"r-1"}]`))
	value, found, err := store.Read(ctx, PrimaryKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"r-1"}]`, value)

	require.NoError(t, store.Write(ctx, PrimaryKey, `[]`))
	value, _, err = store.Read(ctx, PrimaryKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	var count int64
	require.NoError(t, db.Model(&entities.StorageEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "writes to one key upsert a single row")

	require.NoError(t, db.Where("key = ?", PrimaryKey).Delete(&entities.StorageEntry{}).Error)
	_, found, err = store.Read(ctx, PrimaryKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGormStoreAsPrimary(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewStorageDatabase(t)
	primary := NewGormStore(db)
	backup := NewMemoryStore()
	replicator := NewReplicator(primary, backup, nil)

	_, err := NewReplica(replicator).Toggle(ctx, testRecipe("r-1", "Apple Pie"))
	require.NoError(t, err)

	require.NoError(t, db.Where("key = ?", PrimaryKey).Delete(&entities.StorageEntry{}).Error)

	favorites, err := NewReplica(replicator).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r-1"}, ids(favorites))

	_, found, err := primary.Read(ctx, PrimaryKey)
	require.NoError(t, err)
	assert.True(t, found)
}
