package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

// ArchiveRepo stores the external back-catalog of columns published before
// the site existed.
type ArchiveRepo struct {
	db *gorm.DB
}

func NewArchiveRepo(db *gorm.DB) *ArchiveRepo {
	return &ArchiveRepo{db}
}

func (r *ArchiveRepo) FindAll() ([]models.ColumnArchive, error) {
	var entries []models.ColumnArchive
	err := r.db.Order("fecha DESC").Find(&entries).Error
	return entries, err
}

func (r *ArchiveRepo) Add(entry *models.ColumnArchive) error {
	return r.db.Create(entry).Error
}

func (r *ArchiveRepo) Update(entry *models.ColumnArchive) error {
	return r.db.Save(entry).Error
}

func (r *ArchiveRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ColumnArchive{}, "id = ?", id).Error
}
