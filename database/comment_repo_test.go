package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

func seedComment(t *testing.T, d Database, article models.Article, text string, createdAt time.Time) models.Comment {
	t.Helper()
	comment := models.Comment{
		ArticleID: article.ID,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      text,
		CreatedAt: createdAt,
	}
	require.NoError(t, d.CommentRepo().Add(&comment))
	return comment
}

func TestCommentsNewestFirst(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna comentada", author, nil, at(0))

	old := seedComment(t, d, article, "primero", at(1))
	recent := seedComment(t, d, article, "segundo", at(2))

	comments, err := d.CommentRepo().ForArticle(article.ID, false)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, recent.ID, comments[0].ID)
	assert.Equal(t, old.ID, comments[1].ID)
}

func TestForArticleOnlyApproved(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna moderada", author, nil, at(0))

	pending := seedComment(t, d, article, "pendiente", at(1))
	approved := seedComment(t, d, article, "aprobado", at(2))
	_, err := d.CommentRepo().SetApproved([]uuid.UUID{approved.ID}, true)
	require.NoError(t, err)

	visible, err := d.CommentRepo().ForArticle(article.ID, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].ID)

	all, err := d.CommentRepo().ForArticle(article.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	_ = pending
}

func TestReplyMustShareArticle(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	first := seedArticle(t, d, "Columna uno", author, nil, at(0))
	second := seedArticle(t, d, "Columna dos", author, nil, at(1))
	parent := seedComment(t, d, first, "comentario raíz", at(2))

	cross := models.Comment{
		ArticleID: second.ID,
		ParentID:  &parent.ID,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      "respuesta cruzada",
	}
	err := d.CommentRepo().Add(&cross)
	require.Error(t, err)
	assert.True(t, errs.IsConstraintViolation(err))

	reply := models.Comment{
		ArticleID: first.ID,
		ParentID:  &parent.ID,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      "respuesta válida",
	}
	assert.NoError(t, d.CommentRepo().Add(&reply))
}

func TestReplyToMissingParent(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna", author, nil, at(0))

	ghost := uuid.New()
	reply := models.Comment{
		ArticleID: article.ID,
		ParentID:  &ghost,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      "respuesta huérfana",
	}
	err := d.CommentRepo().Add(&reply)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestBulkApprove(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna", author, nil, at(0))

	a := seedComment(t, d, article, "uno", at(1))
	b := seedComment(t, d, article, "dos", at(2))
	seedComment(t, d, article, "tres", at(3))

	changed, err := d.CommentRepo().SetApproved([]uuid.UUID{a.ID, b.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	visible, err := d.CommentRepo().ForArticle(article.ID, true)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	// Empty selection is a no-op.
	changed, err = d.CommentRepo().SetApproved(nil, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestHelpfulVotes(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna", author, nil, at(0))
	comment := seedComment(t, d, article, "útil", at(1))

	for i := 0; i < 3; i++ {
		matched, err := d.CommentRepo().AddHelpfulVote(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	}

	comments, err := d.CommentRepo().ForArticle(article.ID, false)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 3, comments[0].HelpfulVotes)

	matched, err := d.CommentRepo().AddHelpfulVote(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestDeleteRemovesThread(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	article := seedArticle(t, d, "Columna", author, nil, at(0))

	root := seedComment(t, d, article, "raíz", at(1))
	child := models.Comment{
		ArticleID: article.ID,
		ParentID:  &root.ID,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      "respuesta",
	}
	require.NoError(t, d.CommentRepo().Add(&child))
	grandchild := models.Comment{
		ArticleID: article.ID,
		ParentID:  &child.ID,
		Name:      "Lector",
		Email:     "lector@example.com",
		Text:      "respuesta anidada",
	}
	require.NoError(t, d.CommentRepo().Add(&grandchild))
	unrelated := seedComment(t, d, article, "aparte", at(2))

	require.NoError(t, d.CommentRepo().Delete(root.ID))

	remaining, err := d.CommentRepo().ForArticle(article.ID, false)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, unrelated.ID, remaining[0].ID)
}
