package author

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"booksdemo/internal/paging"
	"booksdemo/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	if !testutil.IntegrationEnabled() {
		return m.Run()
	}
	pool, stop, err := testutil.StartPostgres(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer stop()
	testPool = pool
	return m.Run()
}

func newTestRepo(t *testing.T) *PostgresRepo {
	t.Helper()
	if testPool == nil {
		t.Skip("integration tests disabled; run with -integration")
	}
	testutil.Reset(t, testPool)
	return NewPostgresRepo(testPool, 5*time.Second)
}

func TestPostgresRepo_SaveAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, Author{Name: "Ada", Birthdate: testutil.Date(1815, time.December, 10)})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)

	_, err = repo.FindByID(ctx, saved.ID+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresRepo_SaveReplacesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, Author{Name: "Ada", Birthdate: testutil.Date(1815, time.December, 10)})
	require.NoError(t, err)

	saved.Name = "Ada Lovelace"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved, updated)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", found.Name)
}

func TestPostgresRepo_ExistsAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, Author{Name: "Ada", Birthdate: testutil.Date(1815, time.December, 10)})
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	exists, err = repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgresRepo_FindAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Carol", "Alice", "Bob", "Alice"} {
		_, err := repo.Save(ctx, Author{Name: name, Birthdate: testutil.Date(1990, time.January, 1)})
		require.NoError(t, err)
	}

	p := paging.Pageable{Page: 0, Size: 3, Sort: []paging.Order{{Property: "name", Direction: paging.Asc}}}
	got, total, err := repo.FindAll(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, got, 3)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "Alice", got[1].Name)
	assert.Less(t, got[0].ID, got[1].ID)
	assert.Equal(t, "Bob", got[2].Name)

	p.Page = 1
	got, _, err = repo.FindAll(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].Name)

	p.Page = 5
	got, total, err = repo.FindAll(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(4), total)
}
