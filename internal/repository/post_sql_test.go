package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// Verifies the feed window query against the postgres dialect: a single
// SELECT carrying the engagement subqueries, the stable two-key ordering
// and the window limit.
func TestPostRepository_ListByAuthors_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postRows := sqlmock.NewRows([]string{
		"id", "content", "author_id", "created_at",
		"comments_count", "likes_count", "liked",
	}).AddRow(7, "hello", 3, time.Now(), 2, 5, true)

	mock.ExpectQuery(`SELECT posts\.\*, \(SELECT COUNT\(\*\) FROM comments.*\(SELECT COUNT\(\*\) FROM likes.*EXISTS\(SELECT 1 FROM likes.*ORDER BY created_at DESC, id DESC LIMIT \$\d+`).
		WillReturnRows(postRows)

	// Author preload fires as a second query once rows come back.
	authorRows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow(3, "casey")
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(authorRows)

	posts, err := repo.ListByAuthors(ctx, []uint{3, 4}, 9, 20)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(7), posts[0].ID)
	assert.Equal(t, 5, posts[0].LikesCount)
	assert.Equal(t, 2, posts[0].CommentsCount)
	assert.True(t, posts[0].Liked)
	assert.Equal(t, "casey", posts[0].Author.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// An anonymous viewer gets a constant liked column instead of the EXISTS
// subquery, so the viewer id never reaches the SQL.
func TestPostRepository_ListByAuthors_SQLAnonymousViewer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT posts\.\*, .*0 as liked FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	posts, err := repo.ListByAuthors(ctx, []uint{3}, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, posts)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// An empty author set short-circuits without touching the database.
func TestPostRepository_ListByAuthors_SQLNoAuthors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	posts, err := repo.ListByAuthors(context.Background(), nil, 1, 20)
	require.NoError(t, err)
	assert.Nil(t, posts)

	assert.NoError(t, mock.ExpectationsWereMet())
}
