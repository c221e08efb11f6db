package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{db}
}

func (r *AuthorRepo) FindAll() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("es_principal DESC, nombre ASC").Find(&authors).Error
	return authors, err
}

// FindPrincipal returns the author flagged as the site's primary byline, or
// the oldest active author when none is flagged, or nil.
func (r *AuthorRepo) FindPrincipal() (*models.Author, error) {
	var author models.Author
	err := r.db.Where("activo = ?", true).
		Order("es_principal DESC, fecha_creacion ASC").
		First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepo) FindByID(id uuid.UUID) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepo) FindBySlug(slug string) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("slug = ?", slug).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *AuthorRepo) Add(author *models.Author) error {
	return r.db.Create(author).Error
}

func (r *AuthorRepo) Update(author *models.Author) error {
	return r.db.Save(author).Error
}
