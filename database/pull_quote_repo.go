package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

type PullQuoteRepo struct {
	db *gorm.DB
}

func NewPullQuoteRepo(db *gorm.DB) *PullQuoteRepo {
	return &PullQuoteRepo{db}
}

// ForArticle returns an article's pull-quotes in display order.
func (r *PullQuoteRepo) ForArticle(articleID uuid.UUID) ([]models.PullQuote, error) {
	var quotes []models.PullQuote
	err := r.db.Where("articulo_id = ?", articleID).Order("orden ASC").Find(&quotes).Error
	return quotes, err
}

func (r *PullQuoteRepo) Add(quote *models.PullQuote) error {
	return r.db.Create(quote).Error
}

func (r *PullQuoteRepo) Update(quote *models.PullQuote) error {
	return r.db.Save(quote).Error
}

func (r *PullQuoteRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PullQuote{}, "id = ?", id).Error
}
