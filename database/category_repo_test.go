package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryKeepsArticles(t *testing.T) {
	d := newTestDB(t)
	author := seedAuthor(t, d, "Camilo")
	justicia := seedCategory(t, d, "Justicia")
	article := seedArticle(t, d, "Columna jurídica", author, &justicia.ID, at(0))

	require.NoError(t, d.CategoryRepo().Delete(justicia.ID))

	got, err := d.ArticleRepo().FindByID(article.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CategoryID)

	gone, err := d.CategoryRepo().FindByID(justicia.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCategorySlugDerived(t *testing.T) {
	d := newTestDB(t)
	category := seedCategory(t, d, "Opinión Jurídica")
	assert.Equal(t, "opinion-juridica", category.Slug)

	got, err := d.CategoryRepo().FindBySlug("opinion-juridica")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, category.ID, got.ID)
}
