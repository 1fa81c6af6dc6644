package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogplatform/internal/models"
)

func newPostRepoMock(t *testing.T) (*PostRepositoryImpl, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewPostRepository(sqlxDB), mock, func() { db.Close() }
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"post_id", "author_id", "title", "content", "image",
		"categories", "tags", "created_at", "author_name",
	})
}

func TestPostRepository_Create(t *testing.T) {
	repo, mock, closeFn := newPostRepoMock(t)
	defer closeFn()

	post := &models.Post{
		AuthorID:   "author-1",
		Title:      "Первый пост",
		Content:    "текст",
		Categories: []string{"go", "web"},
		Tags:       []string{"blog"},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(
			sqlmock.AnyArg(), // post_id
			"author-1",
			"Первый пост",
			"текст",
			"",
			sqlmock.AnyArg(), // categories
			sqlmock.AnyArg(), // tags
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	assert.NotEmpty(t, post.PostID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	t.Run("Пост найден", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		rows := postRows().AddRow(
			"post-1", "author-1", "Заголовок", "текст", "/uploads/1.jpg",
			"{go}", "{web}", time.Now(), "")

		mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
			WithArgs("post-1").
			WillReturnRows(rows)

		post, err := repo.GetByID(context.Background(), "post-1")

		require.NoError(t, err)
		assert.Equal(t, "author-1", post.AuthorID)
		assert.Equal(t, []string{"go"}, []string(post.Categories))
	})

	t.Run("Пост не найден", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		post, err := repo.GetByID(context.Background(), "missing")

		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostRepository_Update(t *testing.T) {
	t.Run("Успешное обновление", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		post := &models.Post{
			PostID:     "post-1",
			Title:      "Новый заголовок",
			Content:    "новый текст",
			Image:      "/uploads/2.jpg",
			Categories: []string{"go"},
			Tags:       []string{},
		}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), post)

		assert.NoError(t, err)
	})

	t.Run("Несуществующий пост", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &models.Post{PostID: "missing"})

		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE post_id = $1")).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "post-1")

		assert.NoError(t, err)
	})

	t.Run("Несуществующий пост", func(t *testing.T) {
		repo, mock, closeFn := newPostRepoMock(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE post_id = $1")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostRepository_ListAll(t *testing.T) {
	repo, mock, closeFn := newPostRepoMock(t)
	defer closeFn()

	now := time.Now()
	rows := postRows().
		AddRow("post-2", "author-1", "Новый", "", "", "{}", "{}", now, "ivan").
		AddRow("post-1", "author-2", "Старый", "", "", "{}", "{}", now.Add(-time.Hour), "olga")

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.created_at DESC")).
		WillReturnRows(rows)

	posts, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "ivan", posts[0].AuthorName)
	assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	repo, mock, closeFn := newPostRepoMock(t)
	defer closeFn()

	rows := postRows().
		AddRow("post-1", "author-1", "Мой пост", "", "", "{}", "{}", time.Now(), "")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE author_id = $1")).
		WithArgs("author-1").
		WillReturnRows(rows)

	posts, err := repo.ListByAuthor(context.Background(), "author-1")

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "author-1", posts[0].AuthorID)
}
