package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sergiorueda9090/camilo/models"
)

// newTestDB opens an in-memory store shared by a single connection so every
// repository in the test sees the same data.
func newTestDB(t *testing.T) Database {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return New(db)
}

func seedAuthor(t *testing.T, d Database, name string) models.Author {
	t.Helper()
	author := models.Author{Name: name}
	require.NoError(t, d.AuthorRepo().Add(&author))
	return author
}

func seedCategory(t *testing.T, d Database, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, d.CategoryRepo().Add(&category))
	return category
}

// seedArticle inserts a published article at the given publication instant.
// The creation stamp tracks the publication one so ordering tests exercise
// the primary sort key.
func seedArticle(t *testing.T, d Database, title string, author models.Author, category *uuid.UUID, publishedAt time.Time) models.Article {
	t.Helper()
	at := publishedAt
	article := models.Article{
		Title:       title,
		Body:        "contenido de " + title,
		AuthorID:    author.ID,
		CategoryID:  category,
		Status:      models.StatusPublished,
		PublishedAt: &at,
		CreatedAt:   at,
	}
	require.NoError(t, d.ArticleRepo().Add(&article))
	return article
}

func seedDraft(t *testing.T, d Database, title string, author models.Author) models.Article {
	t.Helper()
	article := models.Article{
		Title:    title,
		Body:     "borrador de " + title,
		AuthorID: author.ID,
		Status:   models.StatusDraft,
	}
	require.NoError(t, d.ArticleRepo().Add(&article))
	return article
}

var testEpoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// at offsets the shared epoch by n hours, giving each seeded article a
// distinct publication instant.
func at(n int) time.Time {
	return testEpoch.Add(time.Duration(n) * time.Hour)
}
