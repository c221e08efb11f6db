package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

// DefaultArchiveSize is how many archive entries the home listing shows
// below the featured article.
const DefaultArchiveSize = 3

// DefaultRelatedSize caps the related-articles block on the detail page.
const DefaultRelatedSize = 3

// publishedOrder is the canonical read-path ordering: newest publication
// first, creation stamp breaking ties.
const publishedOrder = "fecha_publicacion DESC, fecha_creacion DESC"

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// published scopes a query to the visible subset.
func (r *ArticleRepo) published() *gorm.DB {
	return r.db.Where("estado = ?", models.StatusPublished)
}

// FindBySlug returns any article by slug regardless of status, or nil.
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").Preload("PullQuotes", func(db *gorm.DB) *gorm.DB {
		return db.Order("orden ASC")
	}).Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindPublishedBySlug returns a published article by slug, or nil.
func (r *ArticleRepo) FindPublishedBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.published().Preload("Author").Preload("Category").Preload("PullQuotes", func(db *gorm.DB) *gorm.DB {
		return db.Order("orden ASC")
	}).Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Featured resolves the highlighted article: the first published one flagged
// destacado, else the most recent published one, else nil. Callers handle
// the empty result; it is not an error.
func (r *ArticleRepo) Featured() (*models.Article, error) {
	var article models.Article
	err := r.published().Preload("Author").Preload("Category").
		Where("destacado = ?", true).Order(publishedOrder).First(&article).Error
	if err == nil {
		return &article, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.published().Preload("Author").Preload("Category").
		Order(publishedOrder).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Archive lists the published set minus the featured article, newest first.
func (r *ArticleRepo) Archive(exclude *uuid.UUID, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = DefaultArchiveSize
	}
	q := r.published().Preload("Author").Preload("Category").Order(publishedOrder).Limit(limit)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}
	var articles []models.Article
	err := q.Find(&articles).Error
	return articles, err
}

// Related returns up to limit published articles sharing the category, then
// fills the remainder from the globally most recent. The article itself and
// duplicates across the two passes are excluded.
func (r *ArticleRepo) Related(article *models.Article, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = DefaultRelatedSize
	}

	var related []models.Article
	if article.CategoryID != nil {
		err := r.published().Preload("Author").Preload("Category").
			Where("categoria_id = ?", *article.CategoryID).
			Where("id <> ?", article.ID).
			Order(publishedOrder).Limit(limit).
			Find(&related).Error
		if err != nil {
			return nil, err
		}
	}

	if remaining := limit - len(related); remaining > 0 {
		seen := make([]uuid.UUID, 0, len(related)+1)
		seen = append(seen, article.ID)
		for _, rel := range related {
			seen = append(seen, rel.ID)
		}

		var filler []models.Article
		err := r.published().Preload("Author").Preload("Category").
			Where("id NOT IN ?", seen).
			Order(publishedOrder).Limit(remaining).
			Find(&filler).Error
		if err != nil {
			return nil, err
		}
		related = append(related, filler...)
	}

	return related, nil
}

// Prev returns the published article with the latest publication timestamp
// strictly before the given one, or nil when it is chronologically first.
func (r *ArticleRepo) Prev(article *models.Article) (*models.Article, error) {
	if article.PublishedAt == nil {
		return nil, nil
	}
	var prev models.Article
	err := r.published().
		Where("fecha_publicacion < ?", *article.PublishedAt).
		Order("fecha_publicacion DESC").First(&prev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prev, nil
}

// Next returns the published article with the earliest publication timestamp
// strictly after the given one, or nil when it is chronologically last.
func (r *ArticleRepo) Next(article *models.Article) (*models.Article, error) {
	if article.PublishedAt == nil {
		return nil, nil
	}
	var next models.Article
	err := r.published().
		Where("fecha_publicacion > ?", *article.PublishedAt).
		Order("fecha_publicacion ASC").First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &next, nil
}

// IncrementViews bumps vistas by one in a single UPDATE so concurrent
// fetches never lose a count. Returns how many rows matched; zero means the
// slug resolves to no published article.
func (r *ArticleRepo) IncrementViews(slug string) (int64, error) {
	res := r.db.Model(&models.Article{}).
		Where("slug = ? AND estado = ?", slug, models.StatusPublished).
		UpdateColumn("vistas", gorm.Expr("vistas + 1"))
	return res.RowsAffected, res.Error
}

// FindPublished lists the published set with offset paging.
func (r *ArticleRepo) FindPublished(offset, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = 10
	}
	var articles []models.Article
	err := r.published().Preload("Author").Preload("Category").
		Order(publishedOrder).Offset(offset).Limit(limit).
		Find(&articles).Error
	return articles, err
}

// FindPublishedByCategory lists a category's published articles.
func (r *ArticleRepo) FindPublishedByCategory(categoryID uuid.UUID, limit int) ([]models.Article, error) {
	q := r.published().Preload("Author").
		Where("categoria_id = ?", categoryID).Order(publishedOrder)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var articles []models.Article
	err := q.Find(&articles).Error
	return articles, err
}

// FindAll lists every article regardless of status, for the admin surface.
func (r *ArticleRepo) FindAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Category").
		Order("fecha_creacion DESC").Find(&articles).Error
	return articles, err
}

func (r *ArticleRepo) FindByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Category").First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Add inserts a new article. Slug derivation and the reading-time recompute
// run in the model hooks; a derived slug that collides surfaces as a
// uniqueness breach from the store.
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepo) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepo) Delete(id uuid.UUID) error {
	return r.db.Select("PullQuotes", "Comments").Delete(&models.Article{ID: id}).Error
}
