package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

// DisplayRepo covers the ordered, activatable display lists (ticker items
// and social links). No cardinality cap applies to either.
type DisplayRepo struct {
	db *gorm.DB
}

func NewDisplayRepo(db *gorm.DB) *DisplayRepo {
	return &DisplayRepo{db}
}

func (r *DisplayRepo) ActiveTickerItems() ([]models.TickerItem, error) {
	var items []models.TickerItem
	err := r.db.Where("activo = ?", true).
		Order("orden ASC, fecha_creacion DESC").
		Find(&items).Error
	return items, err
}

func (r *DisplayRepo) AddTickerItem(item *models.TickerItem) error {
	return r.db.Create(item).Error
}

func (r *DisplayRepo) UpdateTickerItem(item *models.TickerItem) error {
	return r.db.Save(item).Error
}

func (r *DisplayRepo) DeleteTickerItem(id uuid.UUID) error {
	return r.db.Delete(&models.TickerItem{}, "id = ?", id).Error
}

func (r *DisplayRepo) ActiveSocialLinks() ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.db.Where("activo = ?", true).
		Order("orden ASC, nombre ASC").
		Find(&links).Error
	return links, err
}

func (r *DisplayRepo) AddSocialLink(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

func (r *DisplayRepo) UpdateSocialLink(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

func (r *DisplayRepo) DeleteSocialLink(id uuid.UUID) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
