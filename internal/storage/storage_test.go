package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubegen/internal/cube"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "cubegen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestCurrentVersionOnEmptyDatabase(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestSaveAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewGenerationRepository(db)
	e := tables.Build()

	g, err := repo.Save(e, e.Tables(), "0.1.0", "abc123")
	require.NoError(t, err)
	require.NotEmpty(t, g.GenerationID)

	got, err := repo.Get(g.GenerationID)
	require.NoError(t, err)
	assert.Equal(t, g.GenerationID, got.GenerationID)
	assert.Equal(t, "abc123", got.Checksum)
	require.NotNil(t, got.AppVersion)
	assert.Equal(t, "0.1.0", *got.AppVersion)
	assert.WithinDuration(t, g.CreatedAt, got.CreatedAt, 0)
}

func TestGetUnknown(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))

	_, err := repo.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrGenerationNotFound)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))
	e := tables.Build()
	ts := e.Tables()

	first, err := repo.Save(e, ts, "", "one")
	require.NoError(t, err)
	second, err := repo.Save(e, ts, "", "two")
	require.NoError(t, err)

	gs, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, second.GenerationID, gs[0].GenerationID)
	assert.Equal(t, first.GenerationID, gs[1].GenerationID)
	assert.Nil(t, gs[0].AppVersion)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, second.GenerationID, last.GenerationID)
}

func TestGroupingsRoundTrip(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))
	e := tables.Build()

	g, err := repo.Save(e, e.Tables(), "", "x")
	require.NoError(t, err)

	for _, k := range tables.Kinds {
		gs, err := repo.Groupings(g.GenerationID, k)
		require.NoError(t, err)

		entries := e.Entries(k)
		require.Len(t, gs, len(entries), k)
		for i, entry := range entries {
			assert.Equal(t, i, gs[i].Index)
			assert.Equal(t, string(k), gs[i].Enumeration)
			assert.Equal(t, entry, gs[i].Labels)
		}
	}
}

func TestTableRoundTrip(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))
	e := tables.Build()
	ts := e.Tables()

	g, err := repo.Save(e, ts, "", "x")
	require.NoError(t, err)

	for _, want := range ts {
		got, err := repo.Table(g.GenerationID, want.Name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = repo.Table(g.GenerationID, "Nope")
	assert.ErrorIs(t, err, tables.ErrUnknownTable)
}

func TestCell(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))
	e := tables.Build()

	g, err := repo.Save(e, e.Tables(), "", "x")
	require.NoError(t, err)

	v, err := repo.Cell(g.GenerationID, tables.Faces2Ids, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	v, err = repo.Cell(g.GenerationID, tables.Cublets3Ids, 5, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = repo.Cell(g.GenerationID, tables.Cublets2Ids, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, tables.NotFound, v)

	_, err = repo.Cell(g.GenerationID, tables.Cublets2Ids, 0, cube.Label(9))
	assert.ErrorIs(t, err, cube.ErrInvalidLabel)

	_, err = repo.Cell(g.GenerationID, tables.Cublets3Ids, 0, 2)
	assert.Error(t, err)
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewGenerationRepository(db)
	e := tables.Build()

	g, err := repo.Save(e, e.Tables(), "", "x")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(g.GenerationID))

	var cells int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM table_cells").Scan(&cells))
	assert.Zero(t, cells)

	var groupings int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM groupings").Scan(&groupings))
	assert.Zero(t, groupings)
}
