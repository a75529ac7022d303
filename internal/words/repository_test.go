package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/deutschbuddy/pkg/models"
)

func testRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	require.NoError(t, initializeSchema(db))
	return NewRepository(db)
}

func TestUpsertAssignsIDAndUpdates(t *testing.T) {
	repo := testRepository(t)

	w := models.Word{German: "die Lösung", Persian: "راه‌حل", Level: "B1"}
	require.NoError(t, repo.Upsert(&w))
	assert.NotZero(t, w.ID)

	// Same headword again updates in place rather than duplicating.
	again := models.Word{German: "die Lösung", Persian: "راه حل", Level: "B2"}
	require.NoError(t, repo.Upsert(&again))
	assert.Equal(t, w.ID, again.ID)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B2", all[0].Level)
}

func TestByLevels(t *testing.T) {
	repo := testRepository(t)
	require.NoError(t, repo.EnsureSeed())

	words, err := repo.ByLevels([]string{"A2"})
	require.NoError(t, err)
	require.NotEmpty(t, words)
	for _, w := range words {
		assert.Equal(t, "A2", w.Level)
	}

	all, err := repo.ByLevels(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Seed))
}

func TestEnsureSeedIsIdempotent(t *testing.T) {
	repo := testRepository(t)
	require.NoError(t, repo.EnsureSeed())
	require.NoError(t, repo.EnsureSeed())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(Seed), n)
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"A1", "A1"},
		{" b2 ", "B2"},
		{"A2/B1", "B1"},
		{"", "A1"},
		{"C1", "A1"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeLevel(tc.tag), "tag %q", tc.tag)
	}
}

func TestImportCSV(t *testing.T) {
	repo := testRepository(t)

	path := filepath.Join(t.TempDir(), "words.csv")
	csv := "german,persian,level\n" +
		"die Katze,گربه,A1\n" +
		"der Hund,سگ,A1\n" +
		",leer,A1\n" +
		"nur deutsch\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	result, err := repo.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Empty(t, result.Errors)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	repo := testRepository(t)
	_, err := repo.ImportFile("words.txt")
	assert.Error(t, err)
}
