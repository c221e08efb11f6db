package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories in display order.
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("orden ASC, nombre ASC").Find(&categories).Error
	return categories, err
}

// FindBySlug returns a category by slug, or nil.
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepo) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category and nulls out the reference on its articles.
// Articles are never deleted with their category.
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).
			Where("categoria_id = ?", id).
			Update("categoria_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}
