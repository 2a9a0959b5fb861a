package book

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"booksdemo/internal/author"
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

func newTestRepos(t *testing.T) (*PostgresRepo, *author.PostgresRepo) {
	t.Helper()
	if testPool == nil {
		t.Skip("integration tests disabled; run with -integration")
	}
	testutil.Reset(t, testPool)
	return NewPostgresRepo(testPool, 5*time.Second), author.NewPostgresRepo(testPool, 5*time.Second)
}

func TestPostgresRepo_SaveLoadsAuthor(t *testing.T) {
	repo, authors := newTestRepos(t)
	ctx := context.Background()

	a, err := authors.Save(ctx, author.Author{Name: "Author A", Birthdate: testutil.Date(1910, time.January, 18)})
	require.NoError(t, err)

	saved, err := repo.Save(ctx, Book{Title: "Book A", Description: "About A", Author: &author.Author{ID: a.ID}})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	require.NotNil(t, saved.Author)
	assert.Equal(t, a, *saved.Author)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestPostgresRepo_SaveUnknownAuthor(t *testing.T) {
	repo, _ := newTestRepos(t)

	_, err := repo.Save(context.Background(), Book{Title: "T", Description: "D", Author: &author.Author{ID: 12345}})
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = repo.Save(context.Background(), Book{Title: "T", Description: "D"})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestPostgresRepo_SaveReplacesExisting(t *testing.T) {
	repo, authors := newTestRepos(t)
	ctx := context.Background()

	first, err := authors.Save(ctx, author.Author{Name: "First", Birthdate: testutil.Date(1900, time.January, 1)})
	require.NoError(t, err)
	second, err := authors.Save(ctx, author.Author{Name: "Second", Birthdate: testutil.Date(1901, time.January, 1)})
	require.NoError(t, err)

	saved, err := repo.Save(ctx, Book{Title: "T", Description: "D", Author: &first})
	require.NoError(t, err)

	updated, err := repo.Save(ctx, Book{ID: saved.ID, Title: "T2", Description: "D2", Author: &author.Author{ID: second.ID}})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, second, *updated.Author)
}

func TestPostgresRepo_DeletingAuthorDeletesBooks(t *testing.T) {
	repo, authors := newTestRepos(t)
	ctx := context.Background()

	a, err := authors.Save(ctx, author.Author{Name: "Author A", Birthdate: testutil.Date(1910, time.January, 18)})
	require.NoError(t, err)
	b, err := repo.Save(ctx, Book{Title: "Book A", Description: "About A", Author: &a})
	require.NoError(t, err)

	require.NoError(t, authors.DeleteByID(ctx, a.ID))

	_, err = repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	exists, err := repo.ExistsByID(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgresRepo_FindAll(t *testing.T) {
	repo, authors := newTestRepos(t)
	ctx := context.Background()

	a, err := authors.Save(ctx, author.Author{Name: "A", Birthdate: testutil.Date(1950, time.January, 1)})
	require.NoError(t, err)
	for _, title := range []string{"b", "c", "a"} {
		_, err := repo.Save(ctx, Book{Title: title, Description: "d", Author: &a})
		require.NoError(t, err)
	}

	got, total, err := repo.FindAll(ctx, paging.Pageable{
		Size: 2,
		Sort: []paging.Order{{Property: "title", Direction: paging.Desc}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Title)
	assert.Equal(t, "b", got[1].Title)
	assert.Equal(t, "A", got[0].Author.Name)
}
